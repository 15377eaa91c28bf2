package indexes_test

import (
	"context"
	"testing"

	"github.com/keerthivardhanm/cms-V2/internal/app/system/indexes"
	"github.com/keerthivardhanm/cms-V2/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, ctx context.Context, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	want := map[string][]string{
		"pages":          {"idx_pages_updatedAt_desc", "idx_pages_status"},
		"contentBlocks":  {"idx_contentBlocks_updatedAt_desc"},
		"auditLogs":      {"idx_auditLogs_timestamp_desc"},
		"dashboardNotes": {"idx_notes_owner_createdAt"},
	}
	for coll, names := range want {
		got := indexNames(t, ctx, db, coll)
		for _, n := range names {
			if !got[n] {
				t.Errorf("expected index %s on %s", n, coll)
			}
		}
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_RenamesExistingIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The CMS may already have an index on the same keys under its own name.
	_, err := db.Collection("auditLogs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("timestamp_-1"),
	})
	if err != nil {
		t.Fatalf("seed index failed: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	got := indexNames(t, ctx, db, "auditLogs")
	if !got["idx_auditLogs_timestamp_desc"] {
		t.Error("expected idx_auditLogs_timestamp_desc after reconcile")
	}
	if got["timestamp_-1"] {
		t.Error("old index name should be gone")
	}
}
