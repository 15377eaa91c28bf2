// Package docstore is a thin, collection-agnostic read client over the CMS
// document database. The dashboard only ever needs three questions answered
// about a collection: how many documents it holds, all of its documents, and
// the first N documents in some order.
package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Direction is a sort direction for Query.
type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

// Query describes an ordered, limited read.
type Query struct {
	OrderBy   string
	Direction Direction
	Limit     int64
}

// Store reads documents from a Mongo database.
type Store struct {
	db *mongo.Database
}

// New creates a Store bound to db.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Count returns the exact number of documents in collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// GetAll returns every document in collection in natural order.
func (s *Store) GetAll(ctx context.Context, collection string) ([]Record, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return decodeAll(ctx, collection, cur)
}

// Query returns up to q.Limit documents from collection ordered by q.OrderBy.
// Documents without the OrderBy field are left out, so they never take a slot
// from dated ones. A zero Limit means no limit. _id is used as a tiebreaker so
// equal sort keys come back in a stable order.
func (s *Store) Query(ctx context.Context, collection string, q Query) ([]Record, error) {
	dir := q.Direction
	if dir != Asc {
		dir = Desc
	}
	filter := bson.M{}
	opts := options.Find()
	if q.OrderBy != "" {
		filter[q.OrderBy] = bson.M{"$exists": true}
		opts.SetSort(bson.D{
			{Key: q.OrderBy, Value: int(dir)},
			{Key: "_id", Value: int(dir)},
		})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return decodeAll(ctx, collection, cur)
}

func decodeAll(ctx context.Context, collection string, cur *mongo.Cursor) ([]Record, error) {
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	out := make([]Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, Record(d))
	}
	return out, nil
}
