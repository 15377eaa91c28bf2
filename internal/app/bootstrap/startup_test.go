package bootstrap

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/timeouts"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/workers"
	"github.com/keerthivardhanm/cms-V2/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:             "mongodb://localhost:27017",
		MongoDatabase:        "apollo_cms",
		MongoMaxPoolSize:     100,
		SessionKey:           "dev-only-change-me-please-0123456789ABCDEF",
		SessionName:          "apollo-session",
		DisplayTimezone:      "UTC",
		Location:             time.UTC,
		DashboardLoadTimeout: 20 * time.Second,
		RegionWait:           10 * time.Second,
		ViewTTL:              15 * time.Minute,
		ViewSweepInterval:    time.Minute,
		PingTimeout:          2 * time.Second,
		ShortTimeout:         5 * time.Second,
		MediumTimeout:        10 * time.Second,
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	if err := ValidateConfig(nil, validConfig(), testLogger()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"bad mongo uri", func(c *AppConfig) { c.MongoURI = "" }, "MongoDB URI"},
		{"empty database", func(c *AppConfig) { c.MongoDatabase = "" }, "mongo_database"},
		{"unknown zone", func(c *AppConfig) { c.DisplayTimezone = "Mars/Olympus_Mons" }, "display_timezone"},
		{"zero load timeout", func(c *AppConfig) { c.DashboardLoadTimeout = 0 }, "dashboard_load_timeout"},
		{"negative region wait", func(c *AppConfig) { c.RegionWait = -time.Second }, "region_wait"},
		{"zero ttl", func(c *AppConfig) { c.ViewTTL = 0 }, "view_ttl"},
		{"zero sweep interval", func(c *AppConfig) { c.ViewSweepInterval = 0 }, "view_sweep_interval"},
		{"zero medium timeout", func(c *AppConfig) { c.MediumTimeout = 0 }, "db_medium_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCSRFKey(t *testing.T) {
	a := csrfKey("first-session-key-0123456789abcdef")
	if len(a) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(a))
	}
	if !bytes.Equal(a, csrfKey("first-session-key-0123456789abcdef")) {
		t.Error("expected the key to be stable for the same input")
	}
	if bytes.Equal(a, csrfKey("second-session-key-0123456789abcdef")) {
		t.Error("expected different session keys to give different CSRF keys")
	}
	if bytes.Equal(a, []byte("first-session-key-0123456789abcdef")[:32]) {
		t.Error("expected the CSRF key not to be the raw session key")
	}
}

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	prev := timeouts.Current()
	defer timeouts.Configure(prev)

	cfg := validConfig()
	cfg.PingTimeout = 3 * time.Second
	cfg.ShortTimeout = 4 * time.Second
	cfg.MediumTimeout = 12 * time.Second

	if err := Startup(context.Background(), nil, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	got := timeouts.Current()
	if got.Ping != 3*time.Second || got.Short != 4*time.Second || got.Medium != 12*time.Second {
		t.Errorf("unexpected timeouts: %+v", got)
	}
}

func TestStartup_LogsSweeperStartOnce(t *testing.T) {
	prev := timeouts.Current()
	defer timeouts.Configure(prev)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	views := dashboard.NewRegistry()
	deps := DBDeps{
		Views:   views,
		Sweeper: workers.NewViewSweeper(views, logger, time.Hour, time.Minute),
	}
	defer deps.Sweeper.Stop()

	if err := Startup(context.Background(), nil, validConfig(), deps, logger); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	if n := logs.FilterMessage("view sweeper started").Len(); n != 1 {
		t.Errorf("expected one sweeper start log, got %d", n)
	}
	if n := logs.FilterMessage("database timeouts configured").Len(); n != 1 {
		t.Errorf("expected one timeouts log, got %d", n)
	}
}

func TestShutdown_ClosesViews(t *testing.T) {
	views := dashboard.NewRegistry()
	a := views.Open()
	b := views.Open()

	if err := Shutdown(context.Background(), nil, validConfig(), DBDeps{Views: views}, testLogger()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if views.Len() != 0 {
		t.Errorf("expected no open views, got %d", views.Len())
	}
	if !a.Closed() || !b.Closed() {
		t.Error("expected every view to be torn down")
	}
}

func TestEnsureSchema_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	if err := EnsureSchema(ctx, nil, validConfig(), deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	cur, err := db.Collection("pages").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	var specs []bson.M
	if err := cur.All(ctx, &specs); err != nil {
		t.Fatalf("decode indexes: %v", err)
	}

	found := false
	for _, s := range specs {
		if s["name"] == "idx_pages_updatedAt_desc" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected idx_pages_updatedAt_desc, got %v", specs)
	}

	// Running it again is a no-op.
	if err := EnsureSchema(ctx, nil, validConfig(), deps, testLogger()); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}
}
