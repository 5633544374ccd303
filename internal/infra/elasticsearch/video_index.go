package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// VideoDoc is the projection of a video row kept in the full-text
// index. The document id equals the row id.
type VideoDoc struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	YtID     string `json:"yt_id"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

// VideoIndex wraps index-level operations for the videos index.
type VideoIndex struct {
	name string
}

// NewVideoIndex returns a VideoIndex bound to the given index name.
func NewVideoIndex(name string) *VideoIndex {
	return &VideoIndex{name: name}
}

// videosIndexMapping: slug and yt_id are filterable keywords, title and
// date are sortable.
const videosIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"title": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
			},
			"slug": {"type": "keyword"},
			"yt_id": {"type": "keyword"},
			"date": {"type": "date", "format": "yyyy-MM-dd"},
			"duration": {"type": "integer"}
		}
	}
}`

// Ensure creates the index if it does not exist yet.
func (ix *VideoIndex) Ensure(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("elasticsearch client not initialized")
	}

	resp, err := client.Indices.Exists(
		[]string{ix.name},
		client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode == 200 {
		return nil
	}

	createResp, err := client.Indices.Create(
		ix.name,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(bytes.NewReader([]byte(videosIndexMapping))),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer createResp.Body.Close()

	if createResp.IsError() {
		return fmt.Errorf("create index failed: %s", createResp.String())
	}
	return nil
}

// Index upserts one video document. Document id equals the row id, so
// repeated calls replace the document and the operation is retry-safe.
func (ix *VideoIndex) Index(ctx context.Context, doc *VideoDoc) error {
	if client == nil {
		return fmt.Errorf("elasticsearch client not initialized")
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal video doc: %w", err)
	}

	resp, err := client.Index(
		ix.name,
		bytes.NewReader(payload),
		client.Index.WithContext(ctx),
		client.Index.WithDocumentID(strconv.FormatInt(doc.ID, 10)),
	)
	if err != nil {
		return fmt.Errorf("index video %d: %w", doc.ID, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index video %d failed: %s", doc.ID, resp.String())
	}
	return nil
}

// Delete removes a video document. A missing document is not an error
// so the call can be retried after partial failures.
func (ix *VideoIndex) Delete(ctx context.Context, id int64) error {
	if client == nil {
		return fmt.Errorf("elasticsearch client not initialized")
	}

	resp, err := client.Delete(
		ix.name,
		strconv.FormatInt(id, 10),
		client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete video %d from index: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete video %d from index failed: %s", id, resp.String())
	}
	return nil
}

// Search runs a full-text query over title and returns matching row
// ids, best match first, plus the total hit count.
func (ix *VideoIndex) Search(ctx context.Context, q string, skip, limit int) ([]int64, int64, error) {
	if client == nil {
		return nil, 0, fmt.Errorf("elasticsearch client not initialized")
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q,
				"fields": []string{"title^3", "slug"},
			},
		},
		"_source": []string{"id"},
		"from":    skip,
		"size":    limit,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"date": map[string]string{"order": "desc"}},
		},
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := client.Search(
		client.Search.WithContext(ctx),
		client.Search.WithIndex(ix.name),
		client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("search videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, 0, fmt.Errorf("search videos failed: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, esResp.Hits.Total.Value, nil
}
