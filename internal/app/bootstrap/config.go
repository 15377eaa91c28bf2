// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	defaultLoadTimeout   = 20 * time.Second
	defaultRegionWait    = 10 * time.Second
	defaultViewTTL       = 15 * time.Minute
	defaultSweepInterval = time.Minute
)

// appConfigKeys defines the configuration keys for Apollo.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: APOLLO_MONGO_URI, APOLLO_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "apollo_cms", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "apollo-session", Desc: "Session cookie name"},

	// Dashboard presentation
	{Name: "display_timezone", Default: "UTC", Desc: "IANA time zone used for dashboard dates"},
	{Name: "analytics_url", Default: "https://analytics.google.com/analytics/web/?authuser=1#/p491858320/reports/reportinghub?params=_u..nav%3Dmaui", Desc: "External analytics report URL"},
	{Name: "analytics_property_id", Default: "491858320", Desc: "Analytics property id shown on the dashboard"},

	// Dashboard view lifecycle
	{Name: "dashboard_load_timeout", Default: "20s", Desc: "Upper bound for one dashboard load (e.g., 20s, 1m)"},
	{Name: "region_wait", Default: "10s", Desc: "How long a region request waits for data before answering"},
	{Name: "view_ttl", Default: "15m", Desc: "Dashboard views older than this are torn down"},
	{Name: "view_sweep_interval", Default: "1m", Desc: "How often stale dashboard views are swept"},

	// Database operation deadlines
	{Name: "db_ping_timeout", Default: "2s", Desc: "Deadline for health-check pings"},
	{Name: "db_short_timeout", Default: "5s", Desc: "Deadline for single-document reads and writes"},
	{Name: "db_medium_timeout", Default: "10s", Desc: "Deadline for list queries and counts"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, APOLLO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "APOLLO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),

		DisplayTimezone:     appValues.String("display_timezone"),
		AnalyticsURL:        appValues.String("analytics_url"),
		AnalyticsPropertyID: appValues.String("analytics_property_id"),

		DashboardLoadTimeout: appValues.Duration("dashboard_load_timeout", defaultLoadTimeout),
		RegionWait:           appValues.Duration("region_wait", defaultRegionWait),
		ViewTTL:              appValues.Duration("view_ttl", defaultViewTTL),
		ViewSweepInterval:    appValues.Duration("view_sweep_interval", defaultSweepInterval),

		PingTimeout:   appValues.Duration("db_ping_timeout", timeouts.DefaultPing),
		ShortTimeout:  appValues.Duration("db_short_timeout", timeouts.DefaultShort),
		MediumTimeout: appValues.Duration("db_medium_timeout", timeouts.DefaultMedium),
	}

	// An invalid zone leaves Location nil; ValidateConfig reports it.
	if loc, err := time.LoadLocation(appCfg.DisplayTimezone); err == nil {
		appCfg.Location = loc
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Apollo checks the MongoDB URI format, the display time zone, and the
// dashboard durations before anything connects.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}

	if _, err := time.LoadLocation(appCfg.DisplayTimezone); err != nil {
		logger.Error("invalid display time zone", zap.String("display_timezone", appCfg.DisplayTimezone), zap.Error(err))
		return fmt.Errorf("invalid display_timezone %q: %w", appCfg.DisplayTimezone, err)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"dashboard_load_timeout", appCfg.DashboardLoadTimeout},
		{"region_wait", appCfg.RegionWait},
		{"view_ttl", appCfg.ViewTTL},
		{"view_sweep_interval", appCfg.ViewSweepInterval},
		{"db_ping_timeout", appCfg.PingTimeout},
		{"db_short_timeout", appCfg.ShortTimeout},
		{"db_medium_timeout", appCfg.MediumTimeout},
	}
	for _, c := range durations {
		if c.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", c.name, c.d)
		}
	}

	return nil
}
