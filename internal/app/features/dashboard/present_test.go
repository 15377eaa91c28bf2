package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"alice":  "AL",
		"Bo":     "BO",
		"x":      "X",
		"":       "",
		"émilie": "ÉM",
	}
	for in, want := range tests {
		assert.Equal(t, want, Initials(in), in)
	}
}

func TestHumanizeAction(t *testing.T) {
	assert.Equal(t, "page published", HumanizeAction("PAGE_PUBLISHED"))
	assert.Equal(t, "content block deleted", HumanizeAction("content-block_DELETED"))
	assert.Equal(t, "login", HumanizeAction("Login"))
}

func TestEditURL(t *testing.T) {
	assert.Equal(t, "/pages?edit=abc123", EditURL(RecentActivityItem{ID: "abc123", URL: "/pages"}))
	assert.Equal(t, "/content-blocks?edit=a+b", EditURL(RecentActivityItem{ID: "a b", URL: "/content-blocks"}))
}

func TestMetricCards(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		cards := metricCards(Snapshot{Loading: Loading{Metrics: true}})

		require.Len(t, cards, 4)
		for _, c := range cards {
			assert.True(t, c.Loading, c.Title)
			assert.Empty(t, c.Description)
		}
	})

	t.Run("finished without metrics", func(t *testing.T) {
		assert.Empty(t, metricCards(Snapshot{}))
	})

	t.Run("loaded", func(t *testing.T) {
		cards := metricCards(Snapshot{Metrics: &Metrics{TotalPages: 4, TotalFiles: 9, TotalContentBlocks: 2, TotalUsers: 0}})

		require.Len(t, cards, 4)
		assert.Equal(t, MetricCard{Title: "Total Pages", Icon: "file-text", Value: "4", Description: "Published & drafts"}, cards[0])
		assert.Equal(t, MetricCard{Title: "Total Media Files", Icon: "files", Value: "9", Description: "In media library"}, cards[1])
		assert.Equal(t, MetricCard{Title: "Content Blocks", Icon: "grid", Value: "2", Description: "Reusable content units"}, cards[2])
		assert.Equal(t, MetricCard{Title: "Total Users", Icon: "users", Value: "0", Description: "Registered accounts"}, cards[3])
	})
}

func TestAuditRows(t *testing.T) {
	rows := AuditRows([]AuditLogEntry{
		{ID: "a1", UserName: "alice", Action: "PAGE_UPDATED", EntityType: "Page", EntityName: "Home"},
		{ID: "a2", UserName: "System", Action: "Unknown Action", EntityName: "a2"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "AL", rows[0].Initials)
	assert.Equal(t, "page updated", rows[0].Action)
	assert.Equal(t, "Home", rows[0].EntityName)
	assert.Contains(t, rows[0].AvatarURL, "text=A")

	assert.Equal(t, "unknown action", rows[1].Action)
	assert.Empty(t, rows[1].EntityName)
}

func TestRecentRows(t *testing.T) {
	rows := recentRows([]RecentActivityItem{
		{ID: "p1", Title: "Home", Type: ItemPage, URL: "/pages", Icon: "file-text", Editor: "alice", LastModified: "3/15/2024"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "/pages?edit=p1", rows[0].EditURL)
	assert.Equal(t, "Page", rows[0].Type)
}
