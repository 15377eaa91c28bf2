// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/keerthivardhanm/cms-V2/internal/app/resources"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It applies
// the configured database deadlines, registers the shared templates, and
// starts the view sweeper.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.PingTimeout,
		Short:  appCfg.ShortTimeout,
		Medium: appCfg.MediumTimeout,
	})
	cur := timeouts.Current()
	logger.Info("database timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium))

	resources.LoadSharedTemplates()

	if deps.Sweeper != nil {
		deps.Sweeper.Start()
	}
	return nil
}
