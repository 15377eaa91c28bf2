// internal/app/features/dashboard/view.go
package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrAlreadyActivated is returned when a View is activated twice.
	// A fresh load always needs a fresh View.
	ErrAlreadyActivated = errors.New("dashboard view already activated")

	// ErrViewClosed is returned when activating a View after Teardown.
	ErrViewClosed = errors.New("dashboard view is closed")
)

// View is the state of one dashboard view activation. It is created when the
// page is opened, filled in by a Loader, read by the region handlers, and
// discarded on teardown.
//
// Results are committed together with the generation token handed out by
// Activate; a commit after Teardown, or carrying a stale token, is dropped.
type View struct {
	id      string
	created time.Time

	mu        sync.Mutex
	gen       uint64
	activated bool
	closed    bool
	state     Snapshot
	changed   chan struct{}
}

// NewView returns an idle view. Nothing is loading until Activate is called.
func NewView(id string, created time.Time) *View {
	return &View{
		id:      id,
		created: created,
		state:   Snapshot{ViewID: id},
		changed: make(chan struct{}),
	}
}

// ID returns the view id.
func (v *View) ID() string { return v.id }

// CreatedAt returns when the view was opened.
func (v *View) CreatedAt() time.Time { return v.created }

// Activate marks all four regions as loading and returns the generation
// token that later commits must present.
func (v *View) Activate() (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, ErrViewClosed
	}
	if v.activated {
		return 0, ErrAlreadyActivated
	}
	v.activated = true
	v.gen++
	v.state.Loading = Loading{Metrics: true, Charts: true, RecentContent: true, AuditLogs: true}
	v.notifyLocked()
	return v.gen, nil
}

// Teardown closes the view. Waiters are woken and later commits are ignored.
// Calling it more than once is harmless.
func (v *View) Teardown() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	v.gen++
	v.notifyLocked()
}

// Closed reports whether Teardown has been called.
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	if s.Metrics != nil {
		m := *s.Metrics
		s.Metrics = &m
	}
	s.PageStatus = append([]PageStatusSlice(nil), s.PageStatus...)
	s.ContentTypes = append([]ContentTypeSlice(nil), s.ContentTypes...)
	s.RecentItems = append([]RecentActivityItem(nil), s.RecentItems...)
	s.AuditEntries = append([]AuditLogEntry(nil), s.AuditEntries...)
	return s
}

// Changed returns a channel that is closed on the next state change.
func (v *View) Changed() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.changed
}

// Loading reports whether region r is still in progress.
func (v *View) Loading(r Region) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Loading.loading(r)
}

// WaitRegion blocks until region r has finished loading, the view is closed,
// or ctx is done. It reports whether the region finished.
func (v *View) WaitRegion(ctx context.Context, r Region) bool {
	for {
		v.mu.Lock()
		done := !v.state.Loading.loading(r)
		closed := v.closed
		ch := v.changed
		v.mu.Unlock()

		if done {
			return true
		}
		if closed {
			return false
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return false
		}
	}
}

// commit applies fn to the state when gen is still current.
func (v *View) commit(gen uint64, fn func(s *Snapshot)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || gen != v.gen {
		return false
	}
	fn(&v.state)
	v.notifyLocked()
	return true
}

// finish clears the loading flags of the given regions.
func (v *View) finish(gen uint64, regions ...Region) bool {
	return v.commit(gen, func(s *Snapshot) {
		for _, r := range regions {
			s.Loading.clear(r)
		}
	})
}

func (v *View) notifyLocked() {
	close(v.changed)
	v.changed = make(chan struct{})
}
