package models

// Collection names in the CMS document database. The names follow the
// camelCase convention the CMS front end writes with.
const (
	CollectionPages         = "pages"
	CollectionMediaItems    = "mediaItems"
	CollectionContentBlocks = "contentBlocks"
	CollectionUsers         = "users"
	CollectionAuditLogs     = "auditLogs"

	// CollectionDashboardNotes is owned by this service, not the CMS.
	CollectionDashboardNotes = "dashboardNotes"
)
