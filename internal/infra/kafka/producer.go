package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beatstream-go/internal/config"
	"beatstream-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// Video event actions understood by the index reconciler.
const (
	ActionVideoCreated = "created"
	ActionVideoUpdated = "updated"
	ActionVideoDeleted = "deleted"
)

// VideoEvent announces a change to a video row. The reconciler worker
// re-reads the row, so the event carries only the id.
type VideoEvent struct {
	Action  string `json:"action"`
	VideoID int64  `json:"video_id"`
}

// InitProducer configures the domain-event producer.
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// PublishVideoEvent sends one video event. Keyed by video id so events
// for the same row stay ordered within a partition.
func PublishVideoEvent(ctx context.Context, topic string, event *VideoEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send video event: %w", err)
	}

	return nil
}

// VideoEventProducer publishes video events to a fixed topic.
type VideoEventProducer struct {
	topic string
}

// NewVideoEventProducer returns a producer bound to the given topic.
func NewVideoEventProducer(topic string) *VideoEventProducer {
	return &VideoEventProducer{topic: topic}
}

// Publish sends one event for the video.
func (p *VideoEventProducer) Publish(ctx context.Context, action string, videoID int64) error {
	return PublishVideoEvent(ctx, p.topic, &VideoEvent{Action: action, VideoID: videoID})
}

// CloseProducer shuts the producer down.
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
