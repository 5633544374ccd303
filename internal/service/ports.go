package service

import (
	"context"
	"strconv"

	infraES "beatstream-go/internal/infra/elasticsearch"
	"beatstream-go/internal/infra/permission"
)

// VideoIndex is the full-text index seen from the use cases. All
// operations are idempotent so post-commit fan-out can be retried.
type VideoIndex interface {
	Index(ctx context.Context, doc *infraES.VideoDoc) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, skip, limit int) ([]int64, int64, error)
}

// RelationStore writes relation tuples to the external permission
// service. The core never reads permissions back.
type RelationStore interface {
	Write(ctx context.Context, resource permission.Object, relation string, subject permission.Object, subjectRelation string) error
	Delete(ctx context.Context, resource permission.Object, relation string, subject *permission.Object, subjectRelation string) error
}

// VideoEventSink publishes best-effort domain events consumed by the
// index reconciler.
type VideoEventSink interface {
	Publish(ctx context.Context, action string, videoID int64) error
}

// CountCache caches collection counts. Advisory only; mutations must
// invalidate.
type CountCache interface {
	Get(ctx context.Context, key string) (int64, bool)
	Set(ctx context.Context, key string, count int64)
	Invalidate(ctx context.Context, key string)
}

// writeResourceTuples emits the create-side tuples for a new resource:
// admins get writer through role membership, everyone gets reader.
// Happens after the primary commit; at-most-once best effort, the
// store's replace semantics make a retry safe.
func writeResourceTuples(ctx context.Context, store RelationStore, resourceType string, id int64) error {
	resource := permission.Object{Type: resourceType, ID: strconv.FormatInt(id, 10)}

	if err := store.Write(ctx, resource, "writer", permission.Object{Type: "role", ID: "admin"}, "member"); err != nil {
		return err
	}
	return store.Write(ctx, resource, "reader", permission.Object{Type: "user", ID: "*"}, "")
}

// deleteReaderTuple removes the reader relation of a deleted resource.
func deleteReaderTuple(ctx context.Context, store RelationStore, resourceType string, id int64) error {
	resource := permission.Object{Type: resourceType, ID: strconv.FormatInt(id, 10)}
	return store.Delete(ctx, resource, "reader", nil, "")
}
