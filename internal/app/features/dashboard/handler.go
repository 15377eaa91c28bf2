// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/keerthivardhanm/cms-V2/internal/app/features/errors"
	"go.uber.org/zap"
)

// Config carries the dashboard settings taken from the app config.
type Config struct {
	AnalyticsURL        string
	AnalyticsPropertyID string
	LoadTimeout         time.Duration
	RegionWait          time.Duration
}

// Handler serves the dashboard page, its region snippets and the JSON view API.
type Handler struct {
	Loader   *Loader
	Registry *Registry
	Cfg      Config
	Log      *zap.Logger
}

func NewHandler(loader *Loader, registry *Registry, cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		Loader:   loader,
		Registry: registry,
		Cfg:      cfg,
		Log:      logger,
	}
}

type pageVM struct {
	Title       string
	CurrentPath string
	ViewID      string

	Metrics   regionVM
	Charts    regionVM
	Recent    regionVM
	Audit     regionVM
	Quick     []QuickAction
	Analytics analyticsVM
}

// regionVM is what one region template needs, either on the full page or
// as a standalone snippet.
type regionVM struct {
	ViewID  string
	Region  string
	Loading bool

	Cards []MetricCard

	Bar        barChartVM
	Pie        pieChartVM
	ChartEmpty bool

	RecentRows []recentRow
	AuditRows  []AuditRow
}

// ServeDashboard opens a new view, starts loading it and renders the page.
// GET /dashboard
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	v := h.Registry.Open()
	if err := h.Loader.Start(v); err != nil {
		h.Registry.Close(v.ID())
		h.Log.Error("dashboard activation failed", zap.String("view", v.ID()), zap.Error(err))
		uierrors.RenderServerError(w, r, "Unable to open the dashboard.", "/")
		return
	}
	h.Log.Debug("dashboard view opened", zap.String("view", v.ID()))

	s := v.Snapshot()
	data := pageVM{
		Title:       "Dashboard",
		CurrentPath: httpnav.CurrentPath(r),
		ViewID:      v.ID(),
		Metrics:     buildRegion(s, RegionMetrics),
		Charts:      buildRegion(s, RegionCharts),
		Recent:      buildRegion(s, RegionRecent),
		Audit:       buildRegion(s, RegionAudit),
		Quick:       quickActions,
		Analytics: analyticsVM{
			URL:        h.Cfg.AnalyticsURL,
			PropertyID: h.Cfg.AnalyticsPropertyID,
		},
	}

	templates.Render(w, r, "dashboard", data)
}

// ServeRegion renders one region of an open view, waiting up to RegionWait
// for it to finish loading.
// GET /dashboard/views/{id}/regions/{region}
func (h *Handler) ServeRegion(w http.ResponseWriter, r *http.Request) {
	v, ok := h.Registry.Get(chi.URLParam(r, "id"))
	if !ok {
		uierrors.RenderNotFound(w, r, "This dashboard view has expired. Reload the page.", "/dashboard")
		return
	}
	region, ok := ParseRegion(chi.URLParam(r, "region"))
	if !ok {
		uierrors.RenderNotFound(w, r, "Unknown dashboard region.", "/dashboard")
		return
	}

	if h.Cfg.RegionWait > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), h.Cfg.RegionWait)
		v.WaitRegion(ctx, region)
		cancel()
	}

	templates.RenderSnippet(w, "dashboard_region_"+region.String(), buildRegion(v.Snapshot(), region))
}

// ServeView returns the JSON snapshot of an open view.
// GET /dashboard/views/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	v, ok := h.Registry.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "view not found"})
		return
	}
	writeJSON(w, http.StatusOK, v.Snapshot())
}

// ServeTeardown closes a view. The page calls it on unload.
// DELETE /dashboard/views/{id}
func (h *Handler) ServeTeardown(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.Registry.Close(id) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "view not found"})
		return
	}
	h.Log.Debug("dashboard view closed", zap.String("view", id))
	w.WriteHeader(http.StatusNoContent)
}

// ServeSummary loads a throwaway view synchronously and returns its snapshot.
// Partial failures still return 200 with whatever loaded.
// GET /dashboard/summary.json
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.Cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Cfg.LoadTimeout)
		defer cancel()
	}

	v := NewView("summary", time.Now())
	if err := h.Loader.Load(ctx, v); err != nil {
		h.Log.Warn("dashboard summary partially loaded", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, v.Snapshot())
}

func buildRegion(s Snapshot, region Region) regionVM {
	vm := regionVM{
		ViewID:  s.ViewID,
		Region:  region.String(),
		Loading: s.Loading.loading(region),
	}
	switch region {
	case RegionMetrics:
		vm.Cards = metricCards(s)
	case RegionCharts:
		vm.Bar = barChart("Content Type Overview", "Total count of main content types in the CMS.", s.ContentTypes)
		vm.Pie = pieChart(s.PageStatus)
		vm.ChartEmpty = len(s.ContentTypes) == 0 && len(s.PageStatus) == 0
	case RegionRecent:
		vm.RecentRows = recentRows(s.RecentItems)
	case RegionAudit:
		vm.AuditRows = AuditRows(s.AuditEntries)
	}
	return vm
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
