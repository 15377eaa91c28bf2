package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard"
	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func populatedSource() *fakeSource {
	f := newFakeSource()
	f.counts[models.CollectionPages] = 4
	f.counts[models.CollectionMediaItems] = 12
	f.counts[models.CollectionContentBlocks] = 3
	f.counts[models.CollectionUsers] = 2
	f.records[models.CollectionPages] = []docstore.Record{
		page("p1", "Home", "Published", "alice", dt(base.Add(-1*time.Hour))),
		page("p2", "About", "Draft", "bob", dt(base.Add(-2*time.Hour))),
		page("p3", "Blog", "Review", "", dt(base.Add(-6*time.Hour))),
		page("p4", "Old", "", "", dt(base.Add(-9*time.Hour))),
	}
	f.records[models.CollectionContentBlocks] = []docstore.Record{
		block("b1", "Hero", dt(base)),
		block("b2", "Footer", dt(base.Add(-3*time.Hour))),
		block("b3", "Sidebar", dt(base.Add(-10*time.Hour))),
	}
	f.records[models.CollectionAuditLogs] = []docstore.Record{
		{"_id": "a1", "userName": "Alice", "action": "PAGE_UPDATED", "timestamp": dt(base)},
		{"_id": "a2", "userId": "u2", "action": "LOGIN", "timestamp": dt(base.Add(-time.Minute))},
	}
	return f
}

func newTestLoader(src dashboard.Source) *dashboard.Loader {
	l := dashboard.NewLoader(src, time.UTC, 5*time.Second, zap.NewNop())
	l.Now = func() time.Time { return base }
	return l
}

func TestLoad_Success(t *testing.T) {
	l := newTestLoader(populatedSource())
	v := dashboard.NewView("v1", base)

	err := l.Load(context.Background(), v)
	require.NoError(t, err)

	s := v.Snapshot()
	require.NotNil(t, s.Metrics)
	assert.Equal(t, dashboard.Metrics{TotalPages: 4, TotalFiles: 12, TotalContentBlocks: 3, TotalUsers: 2}, *s.Metrics)

	require.Len(t, s.PageStatus, 3)
	assert.Equal(t, int64(2), s.PageStatus[0].Value) // Draft + missing
	assert.Equal(t, int64(1), s.PageStatus[1].Value)
	assert.Equal(t, int64(1), s.PageStatus[2].Value)

	assert.Equal(t, dashboard.ContentTypeSlices(*s.Metrics), s.ContentTypes)

	// 3 pages + 2 blocks queried, merged newest first
	require.Len(t, s.RecentItems, 5)
	var ids []string
	for _, it := range s.RecentItems {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"b1", "p1", "p2", "b2", "p3"}, ids)

	require.Len(t, s.AuditEntries, 2)
	assert.Equal(t, "Alice", s.AuditEntries[0].UserName)
	assert.Equal(t, "u2", s.AuditEntries[1].UserName)

	assert.False(t, s.Loading.Any())
}

func TestLoad_EmptyCollections(t *testing.T) {
	l := newTestLoader(newFakeSource())
	v := dashboard.NewView("v1", base)

	require.NoError(t, l.Load(context.Background(), v))

	s := v.Snapshot()
	require.NotNil(t, s.Metrics)
	assert.Equal(t, dashboard.Metrics{}, *s.Metrics)
	require.Len(t, s.PageStatus, 3)
	assert.Empty(t, s.RecentItems)
	assert.Empty(t, s.AuditEntries)
	assert.False(t, s.Loading.Any())
}

func TestLoad_AuditFailureKeepsOtherRegions(t *testing.T) {
	src := populatedSource()
	src.fail[models.CollectionAuditLogs] = true
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	err := l.Load(context.Background(), v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dashboard.ErrLoad))
	assert.True(t, errors.Is(err, errBoom))

	s := v.Snapshot()
	assert.Empty(t, s.AuditEntries)
	require.NotNil(t, s.Metrics)
	assert.Equal(t, int64(4), s.Metrics.TotalPages)
	assert.Len(t, s.RecentItems, 5)
	assert.False(t, s.Loading.Any())
}

func TestLoad_MetricsFailureIsAllOrNothing(t *testing.T) {
	src := populatedSource()
	src.fail[models.CollectionUsers] = true
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	err := l.Load(context.Background(), v)
	require.ErrorIs(t, err, dashboard.ErrLoad)

	s := v.Snapshot()
	assert.Nil(t, s.Metrics)
	assert.Empty(t, s.PageStatus)
	assert.Empty(t, s.ContentTypes)
	assert.Len(t, s.RecentItems, 5)
	assert.Len(t, s.AuditEntries, 2)
	assert.False(t, s.Loading.Metrics)
	assert.False(t, s.Loading.Charts)
}

func TestLoad_RecentFailureIsAllOrNothing(t *testing.T) {
	src := populatedSource()
	src.fail[models.CollectionContentBlocks] = true
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	require.Error(t, l.Load(context.Background(), v))

	s := v.Snapshot()
	// content block count is part of the metrics group too
	assert.Nil(t, s.Metrics)
	assert.Empty(t, s.RecentItems)
	assert.Len(t, s.AuditEntries, 2)
	assert.False(t, s.Loading.Any())
}

func TestLoad_SecondActivationRejected(t *testing.T) {
	l := newTestLoader(newFakeSource())
	v := dashboard.NewView("v1", base)

	require.NoError(t, l.Load(context.Background(), v))
	err := l.Load(context.Background(), v)
	assert.ErrorIs(t, err, dashboard.ErrAlreadyActivated)
	assert.False(t, v.Snapshot().Loading.Any())
}

func TestStart_FlagsInProgressUntilDone(t *testing.T) {
	src := populatedSource()
	src.gate = make(chan struct{})
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	require.NoError(t, l.Start(v))

	s := v.Snapshot()
	assert.Equal(t, dashboard.Loading{Metrics: true, Charts: true, RecentContent: true, AuditLogs: true}, s.Loading)
	assert.Nil(t, s.Metrics)

	close(src.gate)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, r := range dashboard.Regions {
		require.True(t, v.WaitRegion(ctx, r), r.String())
	}
	assert.NotNil(t, v.Snapshot().Metrics)
}

func TestLoad_EachFlagClearedOnce(t *testing.T) {
	src := populatedSource()
	src.gate = make(chan struct{})
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	transitions := map[string]int{}
	done := make(chan error, 1)
	go func() { done <- l.Load(context.Background(), v) }()

	deadline := time.After(5 * time.Second)
	waitActivated(t, v, deadline)

	prev := v.Snapshot().Loading
	ch := v.Changed()
	close(src.gate)

	for {
		select {
		case <-ch:
		case err := <-done:
			require.NoError(t, err)
			ch = nil
		case <-deadline:
			t.Fatal("load did not finish")
		}
		ch = v.Changed()
		cur := v.Snapshot().Loading
		for _, r := range dashboard.Regions {
			was, is := loadingOf(prev, r), loadingOf(cur, r)
			if is && !was {
				t.Fatalf("region %s re-entered loading", r)
			}
			if was && !is {
				transitions[r.String()]++
			}
		}
		prev = cur
		if !cur.Any() {
			break
		}
	}

	for _, r := range dashboard.Regions {
		assert.Equal(t, 1, transitions[r.String()], r.String())
	}
}

func loadingOf(l dashboard.Loading, r dashboard.Region) bool {
	switch r {
	case dashboard.RegionMetrics:
		return l.Metrics
	case dashboard.RegionCharts:
		return l.Charts
	case dashboard.RegionRecent:
		return l.RecentContent
	default:
		return l.AuditLogs
	}
}

func TestLoad_TeardownDropsLateResults(t *testing.T) {
	src := populatedSource()
	src.gate = make(chan struct{})
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	done := make(chan error, 1)
	go func() { done <- l.Load(context.Background(), v) }()

	waitActivated(t, v, time.After(5*time.Second))

	v.Teardown()
	close(src.gate)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("load did not return")
	}

	s := v.Snapshot()
	assert.True(t, v.Closed())
	assert.Nil(t, s.Metrics)
	assert.Empty(t, s.RecentItems)
	assert.Empty(t, s.AuditEntries)
}

func TestLoad_ContextCanceled(t *testing.T) {
	src := populatedSource()
	src.gate = make(chan struct{}) // never released
	l := newTestLoader(src)
	v := dashboard.NewView("v1", base)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Load(ctx, v)
	require.ErrorIs(t, err, dashboard.ErrLoad)
	assert.False(t, v.Snapshot().Loading.Any())
}
