// internal/app/features/dashboard/loader.go
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrLoad wraps every fetch or aggregation failure during a dashboard load.
var ErrLoad = errors.New("dashboard load failed")

// Source is the read surface of the document store the loader needs.
// *docstore.Store satisfies it.
type Source interface {
	Count(ctx context.Context, collection string) (int64, error)
	GetAll(ctx context.Context, collection string) ([]docstore.Record, error)
	Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error)
}

// Loader fills a View from a Source.
type Loader struct {
	Source   Source
	Log      *zap.Logger
	Location *time.Location
	Now      func() time.Time
	Timeout  time.Duration
}

// NewLoader returns a loader rendering dates in loc.
func NewLoader(src Source, loc *time.Location, timeout time.Duration, logger *zap.Logger) *Loader {
	if loc == nil {
		loc = time.UTC
	}
	return &Loader{
		Source:   src,
		Log:      logger,
		Location: loc,
		Now:      time.Now,
		Timeout:  timeout,
	}
}

// Load activates v and runs the initial load to completion. The metrics,
// recent content and audit groups run concurrently; each is all-or-nothing
// for its own queries. Failures are logged and returned joined, the partial
// state stays in v and every loading flag is cleared exactly once.
func (l *Loader) Load(ctx context.Context, v *View) error {
	gen, err := v.Activate()
	if err != nil {
		return err
	}
	return l.run(ctx, v, gen)
}

// Start activates v and loads it in the background, bounded by l.Timeout.
// Activation is synchronous so the first render already shows every region
// as loading.
func (l *Loader) Start(v *View) error {
	gen, err := v.Activate()
	if err != nil {
		return err
	}
	go func() {
		ctx := context.Background()
		if l.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, l.Timeout)
			defer cancel()
		}
		_ = l.run(ctx, v, gen)
	}()
	return nil
}

func (l *Loader) run(ctx context.Context, v *View, gen uint64) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		defer v.finish(gen, RegionMetrics, RegionCharts)
		record(l.loadMetrics(ctx, v, gen))
	}()
	go func() {
		defer wg.Done()
		defer v.finish(gen, RegionRecent)
		record(l.loadRecent(ctx, v, gen))
	}()
	go func() {
		defer wg.Done()
		defer v.finish(gen, RegionAudit)
		record(l.loadAudit(ctx, v, gen))
	}()
	wg.Wait()

	return errors.Join(errs...)
}

func (l *Loader) loadMetrics(ctx context.Context, v *View, gen uint64) error {
	var (
		m     Metrics
		pages []docstore.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	count := func(coll string, dst *int64) {
		g.Go(func() error {
			n, err := l.Source.Count(gctx, coll)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(models.CollectionPages, &m.TotalPages)
	count(models.CollectionMediaItems, &m.TotalFiles)
	count(models.CollectionContentBlocks, &m.TotalContentBlocks)
	count(models.CollectionUsers, &m.TotalUsers)
	g.Go(func() error {
		recs, err := l.Source.GetAll(gctx, models.CollectionPages)
		if err != nil {
			return err
		}
		pages = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		return l.fail(v, "metrics", err)
	}

	status := PageStatusSlices(pages)
	types := ContentTypeSlices(m)
	v.commit(gen, func(s *Snapshot) {
		s.Metrics = &m
		s.PageStatus = status
		s.ContentTypes = types
	})
	return nil
}

func (l *Loader) loadRecent(ctx context.Context, v *View, gen uint64) error {
	var pages, blocks []docstore.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := l.Source.Query(gctx, models.CollectionPages, docstore.Query{
			OrderBy: "updatedAt", Direction: docstore.Desc, Limit: RecentPagesLimit,
		})
		pages = recs
		return err
	})
	g.Go(func() error {
		recs, err := l.Source.Query(gctx, models.CollectionContentBlocks, docstore.Query{
			OrderBy: "updatedAt", Direction: docstore.Desc, Limit: RecentBlocksLimit,
		})
		blocks = recs
		return err
	})

	if err := g.Wait(); err != nil {
		return l.fail(v, "recent content", err)
	}

	items := MergeRecentActivity(pages, blocks, l.Location)
	v.commit(gen, func(s *Snapshot) { s.RecentItems = items })
	return nil
}

func (l *Loader) loadAudit(ctx context.Context, v *View, gen uint64) error {
	recs, err := l.Source.Query(ctx, models.CollectionAuditLogs, docstore.Query{
		OrderBy: "timestamp", Direction: docstore.Desc, Limit: AuditEntriesLimit,
	})
	if err != nil {
		return l.fail(v, "audit logs", err)
	}

	entries := AuditEntries(recs, l.now(), l.Location)
	v.commit(gen, func(s *Snapshot) { s.AuditEntries = entries })
	return nil
}

func (l *Loader) fail(v *View, group string, cause error) error {
	err := fmt.Errorf("%w: %s: %w", ErrLoad, group, cause)
	if l.Log != nil {
		l.Log.Error("dashboard fetch failed",
			zap.String("view", v.ID()),
			zap.String("group", group),
			zap.Error(cause))
	}
	return err
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
