// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail fast.

The CMS collections are owned by the CMS; only non-unique read indexes are
added to them.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, set := range desiredSets() {
		if err := ensureIndexSet(ctx, db.Collection(set.collection), set.specs); err != nil {
			problems = append(problems, set.collection+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type indexSet struct {
	collection string
	specs      []mongo.IndexModel
}

func desiredSets() []indexSet {
	return []indexSet{
		{
			// recent pages on the dashboard, page status chart
			collection: models.CollectionPages,
			specs: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "updatedAt", Value: -1}},
					Options: options.Index().SetName("idx_pages_updatedAt_desc"),
				},
				{
					Keys:    bson.D{{Key: "status", Value: 1}},
					Options: options.Index().SetName("idx_pages_status"),
				},
			},
		},
		{
			collection: models.CollectionContentBlocks,
			specs: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "updatedAt", Value: -1}},
					Options: options.Index().SetName("idx_contentBlocks_updatedAt_desc"),
				},
			},
		},
		{
			collection: models.CollectionAuditLogs,
			specs: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "timestamp", Value: -1}},
					Options: options.Index().SetName("idx_auditLogs_timestamp_desc"),
				},
			},
		},
		{
			collection: models.CollectionDashboardNotes,
			specs: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: 1}},
					Options: options.Index().SetName("idx_notes_owner_createdAt"),
				},
			},
		},
	}
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av, bv := false, false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "IndexOptionsConflict")
}

// listExisting maps key signature to the index currently holding it.
func listExisting(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	existing := map[string]existingIndex{}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing, cur.Err()
}

func recreate(ctx context.Context, coll *mongo.Collection, oldName string, m mongo.IndexModel) error {
	if _, err := coll.Indexes().DropOne(ctx, oldName); err != nil {
		return fmt.Errorf("drop %s: %w", oldName, err)
	}
	if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, specs []mongo.IndexModel) error {
	var errs []string

	for _, m := range specs {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()
		log := zap.L().With(
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig))

		log.Info("ensuring index")

		existing, err := listExisting(ctx, coll)
		if err != nil {
			// A missing collection lists no indexes; carry on and create.
			log.Debug("list indexes failed", zap.Error(err))
			existing = map[string]existingIndex{}
		}

		if ex, ok := existing[desiredSig]; ok {
			switch {
			case !sameBoolPtr(desiredUnique, ex.Unique):
				if err := recreate(ctx, coll, ex.Name, m); err != nil {
					errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
					continue
				}
				log.Info("index dropped and recreated", zap.Duration("took", time.Since(start)))
			case desiredName != "" && ex.Name != desiredName:
				if err := recreate(ctx, coll, ex.Name, m); err != nil {
					errs = append(errs, fmt.Sprintf("%s(%s): rename: %v", coll.Name(), desiredName, err))
					continue
				}
				log.Info("index renamed", zap.String("from", ex.Name), zap.Duration("took", time.Since(start)))
			default:
				log.Info("reusing existing index", zap.Duration("took", time.Since(start)))
			}
			continue
		}

		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil && isOptionsConflictErr(err) {
			// Raced with another writer; reuse whatever now holds the keys.
			if again, lerr := listExisting(ctx, coll); lerr == nil {
				if ex, ok := again[desiredSig]; ok && sameBoolPtr(desiredUnique, ex.Unique) {
					log.Info("reusing existing index (post-conflict)", zap.String("existing", ex.Name))
					continue
				}
			}
		}
		if err != nil {
			log.Warn("index ensure failed", zap.Duration("took", time.Since(start)), zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		log.Info("index ensured", zap.String("created_name", created), zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
