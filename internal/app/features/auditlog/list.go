// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/paging"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/timeouts"
)

// listData is the view model for the audit log list page.
type listData struct {
	Title       string
	CurrentPath string
	BackURL     string

	Rows []dashboard.AuditRow

	paging.Window
}

// ServeList handles GET /audit-logs?page=N.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "audit log list")
	defer cancel()

	page := paging.ParsePage(r)

	total, err := h.Store.Count(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count audit logs failed", err, "A database error occurred.", "/dashboard")
		return
	}

	recs, err := h.Store.List(ctx, paging.Offset(page, paging.PageSize), paging.PageSize)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list audit logs failed", err, "A database error occurred.", "/dashboard")
		return
	}

	entries := dashboard.AuditEntries(recs, h.Now(), h.Location)

	data := listData{
		Title:       "Audit Logs",
		CurrentPath: httpnav.CurrentPath(r),
		BackURL:     httpnav.ResolveBackURL(r, "/dashboard"),
		Rows:        dashboard.AuditRows(entries),
		Window:      paging.Compute(page, paging.PageSize, len(entries), total),
	}

	templates.RenderAutoMap(w, r, "audit_list", nil, data)
}
