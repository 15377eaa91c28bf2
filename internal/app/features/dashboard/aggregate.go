// internal/app/features/dashboard/aggregate.go
package dashboard

import (
	"sort"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
)

const (
	RecentPagesLimit  = 3
	RecentBlocksLimit = 2
	RecentItemsLimit  = 5
	AuditEntriesLimit = 5

	// DateLayout formats the "last modified" column.
	DateLayout = "1/2/2006"
	// TimestampLayout formats audit log timestamps.
	TimestampLayout = "1/2/2006 3:04:05 PM"

	// NotAvailable is shown wherever a value is missing.
	NotAvailable = "N/A"

	unknownEditor = "Unknown"
	systemUser    = "System"
	unknownAction = "Unknown Action"
)

// Fill keys per status. Templates resolve "chart-N" to var(--chart-N).
var statusFill = map[models.PageStatus]string{
	models.PageStatusDraft:     "chart-1",
	models.PageStatusPublished: "chart-2",
	models.PageStatusReview:    "chart-3",
}

// BarFill is the color key of the content-type bar series.
const BarFill = "chart-4"

// PageStatusSlices buckets pages by status. All three statuses are always
// present in Draft, Published, Review order; unknown or missing status counts
// as Draft.
func PageStatusSlices(pages []docstore.Record) []PageStatusSlice {
	counts := make(map[models.PageStatus]int64, len(models.PageStatuses))
	for _, p := range pages {
		counts[models.ParsePageStatus(p.String("status"))]++
	}

	out := make([]PageStatusSlice, 0, len(models.PageStatuses))
	for _, s := range models.PageStatuses {
		out = append(out, PageStatusSlice{Name: s, Value: counts[s], Fill: statusFill[s]})
	}
	return out
}

// ContentTypeSlices derives the bar chart series from the metrics.
func ContentTypeSlices(m Metrics) []ContentTypeSlice {
	return []ContentTypeSlice{
		{Type: "Pages", Count: m.TotalPages},
		{Type: "Blocks", Count: m.TotalContentBlocks},
		{Type: "Users", Count: m.TotalUsers},
		{Type: "Media", Count: m.TotalFiles},
	}
}

// MergeRecentActivity maps pages then blocks into activity items, orders them
// newest first with undated items last, and keeps at most RecentItemsLimit.
// Items with equal times keep their input order. Records without an _id are
// skipped since their edit link would point nowhere.
func MergeRecentActivity(pages, blocks []docstore.Record, loc *time.Location) []RecentActivityItem {
	items := make([]RecentActivityItem, 0, len(pages)+len(blocks))

	for _, p := range pages {
		editor := p.String("author")
		if editor == "" {
			editor = unknownEditor
		}
		if it, err := newActivityItem(p, p.String("title"), ItemPage, editor, loc); err == nil {
			items = append(items, it)
		}
	}
	for _, b := range blocks {
		if it, err := newActivityItem(b, b.String("name"), ItemBlock, NotAvailable, loc); err == nil {
			items = append(items, it)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].modifiedAt, items[j].modifiedAt
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})

	if len(items) > RecentItemsLimit {
		items = items[:RecentItemsLimit]
	}
	return items
}

func newActivityItem(rec docstore.Record, title string, typ ItemType, editor string, loc *time.Location) (RecentActivityItem, error) {
	id, err := rec.RequireID()
	if err != nil {
		return RecentActivityItem{}, err
	}
	it := RecentActivityItem{
		ID:           id,
		Title:        title,
		Type:         typ,
		LastModified: NotAvailable,
		Editor:       editor,
	}
	switch typ {
	case ItemPage:
		it.URL, it.Icon = "/pages", "file-text"
	case ItemBlock:
		it.URL, it.Icon = "/content-blocks", "grid"
	}
	if t, ok := rec.Time("updatedAt"); ok {
		it.modifiedAt = t
		it.LastModified = t.In(loc).Format(DateLayout)
	}
	return it, nil
}

// AuditEntries maps audit log records to display entries. Records with no
// valid timestamp are stamped with now.
func AuditEntries(recs []docstore.Record, now time.Time, loc *time.Location) []AuditLogEntry {
	out := make([]AuditLogEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, AuditEntry(rec, now, loc))
	}
	return out
}

// AuditEntry maps a single audit log record.
func AuditEntry(rec docstore.Record, now time.Time, loc *time.Location) AuditLogEntry {
	user := firstNonEmpty(rec.String("userName"), rec.String("userId"), systemUser)
	action := firstNonEmpty(rec.String("action"), unknownAction)

	ts, ok := rec.Time("timestamp")
	if !ok {
		ts = now
	}

	return AuditLogEntry{
		ID:         rec.ID(),
		UserName:   user,
		Action:     action,
		EntityType: rec.String("entityType"),
		EntityName: firstNonEmpty(rec.String("entityName"), rec.String("entityId")),
		Timestamp:  ts.In(loc).Format(TimestampLayout),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
