// internal/app/features/dashboard/registry.go
package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry tracks the views that are currently open in some browser.
type Registry struct {
	mu    sync.Mutex
	views map[string]*View
	now   func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]*View), now: time.Now}
}

// Open creates and registers a new idle view.
func (r *Registry) Open() *View {
	v := NewView(uuid.NewString(), r.now())
	r.mu.Lock()
	r.views[v.ID()] = v
	r.mu.Unlock()
	return v
}

// Get returns the view with the given id.
func (r *Registry) Get(id string) (*View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	return v, ok
}

// Close tears down and forgets a view. It reports whether the view existed.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if ok {
		v.Teardown()
	}
	return ok
}

// Sweep tears down every view opened more than maxAge ago and returns how
// many were removed.
func (r *Registry) Sweep(maxAge time.Duration) int {
	cutoff := r.now().Add(-maxAge)

	var stale []*View
	r.mu.Lock()
	for id, v := range r.views {
		if v.CreatedAt().Before(cutoff) {
			stale = append(stale, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Teardown()
	}
	return len(stale)
}

// CloseAll tears down every open view and returns how many there were.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	all := r.views
	r.views = make(map[string]*View)
	r.mu.Unlock()

	for _, v := range all {
		v.Teardown()
	}
	return len(all)
}

// Len returns the number of open views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
