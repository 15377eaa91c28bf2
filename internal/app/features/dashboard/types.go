// internal/app/features/dashboard/types.go
package dashboard

import (
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/domain/models"
)

// Metrics holds the headline counts shown on the metric cards.
type Metrics struct {
	TotalPages         int64 `json:"total_pages"`
	TotalFiles         int64 `json:"total_files"`
	TotalContentBlocks int64 `json:"total_content_blocks"`
	TotalUsers         int64 `json:"total_users"`
}

// PageStatusSlice is one bucket of the page-status pie chart.
type PageStatusSlice struct {
	Name  models.PageStatus `json:"name"`
	Value int64             `json:"value"`
	Fill  string            `json:"fill"` // chart color key, e.g. "chart-1"
}

// ContentTypeSlice is one bar of the content-type overview chart.
type ContentTypeSlice struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// ItemType distinguishes the two kinds of recently modified content.
type ItemType string

const (
	ItemPage  ItemType = "Page"
	ItemBlock ItemType = "Block"
)

// RecentActivityItem is one row of the "Recently Modified Content" list.
type RecentActivityItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         ItemType `json:"type"`
	LastModified string   `json:"last_modified"`
	Editor       string   `json:"editor"`
	URL          string   `json:"url"`
	Icon         string   `json:"icon"`

	modifiedAt time.Time // zero when the record had no valid updatedAt
}

// AuditLogEntry is one row of the recent audit log list.
type AuditLogEntry struct {
	ID         string `json:"id"`
	UserName   string `json:"user_name"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type,omitempty"`
	EntityName string `json:"entity_name,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Loading carries the four independent "in progress" flags.
type Loading struct {
	Metrics       bool `json:"metrics"`
	Charts        bool `json:"charts"`
	RecentContent bool `json:"recent_content"`
	AuditLogs     bool `json:"audit_logs"`
}

// Any reports whether any region is still loading.
func (l Loading) Any() bool {
	return l.Metrics || l.Charts || l.RecentContent || l.AuditLogs
}

// Snapshot is an immutable copy of a View's state, safe to render.
type Snapshot struct {
	ViewID       string               `json:"view_id"`
	Metrics      *Metrics             `json:"metrics"`
	PageStatus   []PageStatusSlice    `json:"page_status"`
	ContentTypes []ContentTypeSlice   `json:"content_types"`
	RecentItems  []RecentActivityItem `json:"recent_items"`
	AuditEntries []AuditLogEntry      `json:"audit_entries"`
	Loading      Loading              `json:"loading"`
}
