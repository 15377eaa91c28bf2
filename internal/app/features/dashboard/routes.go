// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (normally "/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDashboard)
	r.Get("/summary.json", h.ServeSummary)

	r.Route("/views/{id}", func(vr chi.Router) {
		vr.Get("/", h.ServeView)
		vr.Delete("/", h.ServeTeardown)
		// navigator.sendBeacon can only POST.
		vr.Post("/teardown", h.ServeTeardown)
		vr.Get("/regions/{region}", h.ServeRegion)
	})

	return r
}
