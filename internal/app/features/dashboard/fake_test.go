package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard"

	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBoom = errors.New("boom")

// fakeSource serves canned data per collection. A collection listed in fail
// returns errBoom; when gate is set every call blocks until it is closed.
type fakeSource struct {
	mu      sync.Mutex
	counts  map[string]int64
	records map[string][]docstore.Record
	fail    map[string]bool
	gate    chan struct{}
	calls   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		counts:  map[string]int64{},
		records: map[string][]docstore.Record{},
		fail:    map[string]bool{},
	}
}

func (f *fakeSource) wait(ctx context.Context, coll string) error {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	failing := f.fail[coll]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if failing {
		return errBoom
	}
	return nil
}

func (f *fakeSource) Count(ctx context.Context, coll string) (int64, error) {
	if err := f.wait(ctx, coll); err != nil {
		return 0, err
	}
	return f.counts[coll], nil
}

func (f *fakeSource) GetAll(ctx context.Context, coll string) ([]docstore.Record, error) {
	if err := f.wait(ctx, coll); err != nil {
		return nil, err
	}
	return f.records[coll], nil
}

// Query returns the canned records in stored order, cut to the limit.
func (f *fakeSource) Query(ctx context.Context, coll string, q docstore.Query) ([]docstore.Record, error) {
	if err := f.wait(ctx, coll); err != nil {
		return nil, err
	}
	recs := f.records[coll]
	if q.Limit > 0 && int64(len(recs)) > q.Limit {
		recs = recs[:q.Limit]
	}
	return recs, nil
}

func dt(t time.Time) primitive.DateTime {
	return primitive.NewDateTimeFromTime(t)
}

var base = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func page(id, title, status, author string, updated any) docstore.Record {
	r := docstore.Record{"_id": id, "title": title}
	if status != "" {
		r["status"] = status
	}
	if author != "" {
		r["author"] = author
	}
	if updated != nil {
		r["updatedAt"] = updated
	}
	return r
}

func block(id, name string, updated any) docstore.Record {
	r := docstore.Record{"_id": id, "name": name}
	if updated != nil {
		r["updatedAt"] = updated
	}
	return r
}

// waitActivated blocks until v has been activated. The Changed channel is
// taken before the flag is read so an activation in between is not missed.
func waitActivated(t *testing.T, v *dashboard.View, deadline <-chan time.Time) {
	t.Helper()
	for {
		ch := v.Changed()
		if v.Loading(dashboard.RegionMetrics) {
			return
		}
		select {
		case <-ch:
		case <-deadline:
			t.Fatal("view never activated")
		}
	}
}
