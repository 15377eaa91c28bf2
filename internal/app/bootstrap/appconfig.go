// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). Framework-level settings such
// as ports, TLS and log level live in WAFFLE's CoreConfig instead.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Upper bound on pooled connections

	// Cookie session used by the notes widget
	SessionKey  string // Secret key for signing session cookies (must be strong in production)
	SessionName string // Cookie name (default: apollo-session)

	// Dashboard presentation
	DisplayTimezone     string         // IANA zone used to format dates (default: UTC)
	Location            *time.Location // Resolved from DisplayTimezone in LoadConfig; nil when invalid
	AnalyticsURL        string         // External analytics report opened from the dashboard
	AnalyticsPropertyID string         // Property id shown on the analytics card

	// Dashboard view lifecycle
	DashboardLoadTimeout time.Duration // Upper bound for one full dashboard load
	RegionWait           time.Duration // How long a region request waits for its data
	ViewTTL              time.Duration // Views older than this are torn down by the sweeper
	ViewSweepInterval    time.Duration // How often the sweeper runs

	// Database operation deadlines (see system/timeouts)
	PingTimeout   time.Duration
	ShortTimeout  time.Duration
	MediumTimeout time.Duration
}
