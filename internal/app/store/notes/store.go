// internal/app/store/notes/store.go
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a note does not exist for the owner.
var ErrNotFound = errors.New("note not found")

// Store persists dashboard notes.
type Store struct {
	c *mongo.Collection
}

// New creates a notes Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.CollectionDashboardNotes)}
}

// List returns the owner's notes, oldest first.
func (s *Store) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Note
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return out, nil
}

// Count returns how many notes the owner has.
func (s *Store) Count(ctx context.Context, ownerID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"ownerId": ownerID})
}

// Insert stores a new note.
func (s *Store) Insert(ctx context.Context, n models.Note) error {
	_, err := s.c.InsertOne(ctx, n)
	return err
}

// Toggle flips the done flag of one of the owner's notes.
func (s *Store) Toggle(ctx context.Context, ownerID, id string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "ownerId": ownerID},
		mongo.Pipeline{{{Key: "$set", Value: bson.M{"done": bson.M{"$not": bson.A{"$done"}}}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one of the owner's notes.
func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
