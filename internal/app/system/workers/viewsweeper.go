// internal/app/system/workers/viewsweeper.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper removes expired entries older than a given age and reports how
// many it removed. *dashboard.Registry satisfies it.
type Sweeper interface {
	Sweep(maxAge time.Duration) int
}

// ViewSweeper is a background worker that tears down dashboard views whose
// browser never sent a teardown.
type ViewSweeper struct {
	views    Sweeper
	log      *zap.Logger
	interval time.Duration
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewViewSweeper creates a sweeper that runs every interval and removes
// views opened more than ttl ago.
func NewViewSweeper(views Sweeper, logger *zap.Logger, interval, ttl time.Duration) *ViewSweeper {
	return &ViewSweeper{
		views:    views,
		log:      logger,
		interval: interval,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *ViewSweeper) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("view sweeper started",
		zap.Duration("interval", w.interval),
		zap.Duration("ttl", w.ttl))
}

// Stop signals the worker to stop and waits for it to finish.
// Calling it more than once is harmless.
func (w *ViewSweeper) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("view sweeper stopped")
	})
}

func (w *ViewSweeper) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ViewSweeper) sweep() {
	if n := w.views.Sweep(w.ttl); n > 0 {
		w.log.Info("swept expired dashboard views", zap.Int("count", n))
	}
}
