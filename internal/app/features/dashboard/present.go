// internal/app/features/dashboard/present.go
package dashboard

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const valuePlaceholder = "..."

// MetricCard is the view model of one metric card.
type MetricCard struct {
	Title       string
	Icon        string
	Value       string
	Loading     bool
	Description string
}

func metricCards(s Snapshot) []MetricCard {
	type def struct {
		title, icon, desc string
		value             func(m *Metrics) int64
	}
	defs := []def{
		{"Total Pages", "file-text", "Published & drafts", func(m *Metrics) int64 { return m.TotalPages }},
		{"Total Media Files", "files", "In media library", func(m *Metrics) int64 { return m.TotalFiles }},
		{"Content Blocks", "grid", "Reusable content units", func(m *Metrics) int64 { return m.TotalContentBlocks }},
		{"Total Users", "users", "Registered accounts", func(m *Metrics) int64 { return m.TotalUsers }},
	}

	loading := s.Loading.Metrics
	if !loading && s.Metrics == nil {
		// Load finished without counts; the region shows its empty state.
		return nil
	}
	cards := make([]MetricCard, 0, len(defs))
	for _, d := range defs {
		c := MetricCard{Title: d.title, Icon: d.icon, Value: valuePlaceholder, Loading: loading}
		if !loading {
			c.Value = strconv.FormatInt(d.value(s.Metrics), 10)
			c.Description = d.desc
		}
		cards = append(cards, c)
	}
	return cards
}

// Initials returns the first two characters of name, upper-cased.
func Initials(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// HumanizeAction turns "PAGE_PUBLISHED" into "page published".
func HumanizeAction(action string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(action))
}

// EditURL returns the editor link for a recent activity item.
func EditURL(it RecentActivityItem) string {
	return it.URL + "?edit=" + url.QueryEscape(it.ID)
}

func avatarURL(name string) string {
	ch := "?"
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		ch = strings.ToUpper(string(r))
	}
	return "https://placehold.co/40x40.png?text=" + url.QueryEscape(ch)
}

type recentRow struct {
	Title    string
	URL      string
	EditURL  string
	Icon     string
	Type     string
	Editor   string
	Modified string
}

func recentRows(items []RecentActivityItem) []recentRow {
	rows := make([]recentRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, recentRow{
			Title:    it.Title,
			URL:      it.URL,
			EditURL:  EditURL(it),
			Icon:     it.Icon,
			Type:     string(it.Type),
			Editor:   it.Editor,
			Modified: it.LastModified,
		})
	}
	return rows
}

// AuditRow is the display form of an audit log entry.
type AuditRow struct {
	Initials   string
	AvatarURL  string
	UserName   string
	Action     string
	EntityType string
	EntityName string // empty when absent or equal to the entry id
	Timestamp  string
}

// AuditRows builds display rows from audit log entries.
func AuditRows(entries []AuditLogEntry) []AuditRow {
	rows := make([]AuditRow, 0, len(entries))
	for _, e := range entries {
		row := AuditRow{
			Initials:   Initials(e.UserName),
			AvatarURL:  avatarURL(e.UserName),
			UserName:   e.UserName,
			Action:     HumanizeAction(e.Action),
			EntityType: e.EntityType,
			Timestamp:  e.Timestamp,
		}
		if e.EntityName != "" && e.EntityName != e.ID {
			row.EntityName = e.EntityName
		}
		rows = append(rows, row)
	}
	return rows
}

// QuickAction is a shortcut button on the dashboard.
type QuickAction struct {
	Label string
	Icon  string
	URL   string
}

var quickActions = []QuickAction{
	{Label: "New Page", Icon: "file-plus", URL: "/pages?new=1"},
	{Label: "New Content Block", Icon: "square-plus", URL: "/content-blocks?new=1"},
	{Label: "Upload Media", Icon: "upload", URL: "/media"},
	{Label: "Audit Logs", Icon: "history", URL: "/audit-logs"},
	{Label: "Settings", Icon: "settings", URL: "/settings"},
}

type analyticsVM struct {
	URL        string
	PropertyID string
}
