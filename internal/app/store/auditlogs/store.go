// internal/app/store/auditlogs/store.go
package auditlogs

import (
	"context"
	"fmt"

	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads the CMS audit log. Entries are written by the CMS itself.
type Store struct {
	c *mongo.Collection
}

// New creates an audit log Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.CollectionAuditLogs)}
}

// List returns up to limit entries newest first, skipping offset entries.
// Entries are returned raw so callers can tolerate loosely typed fields.
func (s *Store) List(ctx context.Context, offset, limit int64) ([]docstore.Record, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit logs: %w", err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode audit logs: %w", err)
	}
	out := make([]docstore.Record, len(raw))
	for i, m := range raw {
		out[i] = docstore.Record(m)
	}
	return out, nil
}

// Count returns the number of audit log entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count audit logs: %w", err)
	}
	return n, nil
}
