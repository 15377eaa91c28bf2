// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	auditlogfeature "github.com/keerthivardhanm/cms-V2/internal/app/features/auditlog"
	dashboardfeature "github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard"
	_ "github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard/views"
	errorsfeature "github.com/keerthivardhanm/cms-V2/internal/app/features/errors"
	healthfeature "github.com/keerthivardhanm/cms-V2/internal/app/features/health"
	notesfeature "github.com/keerthivardhanm/cms-V2/internal/app/features/notes"
	auditlogstore "github.com/keerthivardhanm/cms-V2/internal/app/store/auditlogs"
	"github.com/keerthivardhanm/cms-V2/internal/app/store/docstore"
	notestore "github.com/keerthivardhanm/cms-V2/internal/app/store/notes"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/cookiestore"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Apollo boots the template engine, builds
// the cookie store used by the notes widget, and mounts the dashboard, notes,
// audit log and health routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	sessionStore, err := cookiestore.New(appCfg.SessionKey, secure, logger)
	if err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	loc := appCfg.Location
	if loc == nil {
		loc = time.UTC
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	views := deps.Views
	if views == nil {
		views = dashboardfeature.NewRegistry()
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, views, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	// Dashboard
	loader := dashboardfeature.NewLoader(docstore.New(deps.MongoDatabase), loc, appCfg.DashboardLoadTimeout, logger)
	dashboardHandler := dashboardfeature.NewHandler(loader, views, dashboardfeature.Config{
		AnalyticsURL:        appCfg.AnalyticsURL,
		AnalyticsPropertyID: appCfg.AnalyticsPropertyID,
		LoadTimeout:         appCfg.DashboardLoadTimeout,
		RegionWait:          appCfg.RegionWait,
	}, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Notes widget
	owners := notesfeature.NewOwners(sessionStore, appCfg.SessionName, logger)
	notesHandler := notesfeature.NewHandler(notesfeature.NewService(notestore.New(deps.MongoDatabase)), owners, logger)
	r.Mount("/notes", notesfeature.Routes(notesHandler, csrfKey(appCfg.SessionKey), secure))

	// Audit log listing
	auditHandler := auditlogfeature.NewHandler(auditlogstore.New(deps.MongoDatabase), loc, errLog, logger)
	r.Mount("/audit-logs", auditlogfeature.Routes(auditHandler))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorsfeature.RenderNotFound(w, r, "The page you requested does not exist.", "/dashboard")
	})

	return r, nil
}

// csrfKey derives the 32-byte CSRF authentication key from the session key
// so the two cookies never share raw key material.
func csrfKey(sessionKey string) []byte {
	sum := sha256.Sum256([]byte("csrf:" + sessionKey))
	return sum[:]
}
