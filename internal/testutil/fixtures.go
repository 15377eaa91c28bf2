package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, collection string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert into %s: %v", collection, err)
	}
}

// CreatePage creates a page. A nil updatedAt leaves the field unset.
func (f *Fixtures) CreatePage(ctx context.Context, title string, status models.PageStatus, author string, updatedAt *time.Time) models.Page {
	f.t.Helper()

	p := models.Page{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Status:    status,
		Author:    author,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: updatedAt,
	}
	f.insert(ctx, models.CollectionPages, p)
	return p
}

// CreateContentBlock creates a content block. A nil updatedAt leaves the field unset.
func (f *Fixtures) CreateContentBlock(ctx context.Context, name string, updatedAt *time.Time) models.ContentBlock {
	f.t.Helper()

	b := models.ContentBlock{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: updatedAt,
	}
	f.insert(ctx, models.CollectionContentBlocks, b)
	return b
}

// CreateMediaItem creates a media library entry.
func (f *Fixtures) CreateMediaItem(ctx context.Context, fileName string) models.MediaItem {
	f.t.Helper()

	m := models.MediaItem{
		ID:        primitive.NewObjectID(),
		FileName:  fileName,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, models.CollectionMediaItems, m)
	return m
}

// CreateUser creates a CMS user account.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	u := models.User{
		ID:          primitive.NewObjectID(),
		DisplayName: name,
		Email:       email,
		Role:        "editor",
		CreatedAt:   time.Now().UTC(),
	}
	f.insert(ctx, models.CollectionUsers, u)
	return u
}

// CreateAuditLog inserts an audit log entry, assigning an id when missing.
func (f *Fixtures) CreateAuditLog(ctx context.Context, entry models.AuditLog) models.AuditLog {
	f.t.Helper()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	f.insert(ctx, models.CollectionAuditLogs, entry)
	return entry
}

// InsertRaw inserts an arbitrary document, for tests that need malformed data
// such as a string where a timestamp belongs.
func (f *Fixtures) InsertRaw(ctx context.Context, collection string, doc bson.M) {
	f.t.Helper()
	f.insert(ctx, collection, doc)
}

// TimePtr returns a pointer to t in UTC, truncated to millisecond precision
// so it survives a round trip through BSON unchanged.
func TimePtr(t time.Time) *time.Time {
	t = t.UTC().Truncate(time.Millisecond)
	return &t
}
