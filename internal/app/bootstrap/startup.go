// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/whopinsights/internal/app/resources"
	"github.com/dalemusser/whopinsights/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the upstream
// clients are built, but before the HTTP handler is. It loads the shared
// templates and applies the configured outbound call budgets.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})
	cur := timeouts.Current()
	logger.Info("outbound timeouts configured",
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
	)
	return nil
}
