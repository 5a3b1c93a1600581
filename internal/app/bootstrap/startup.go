// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/activitymap/internal/app/resources"
	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/timeouts"
	"github.com/dalemusser/activitymap/internal/app/system/viewdata"
	"github.com/dalemusser/activitymap/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after ConnectDB: shared
// templates, timeouts, the first catalog load and the refresh worker.
//
// The first load runs in the background so the server comes up immediately
// and shows a loading page; set catalog_wait_on_start to block instead.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}
	timeouts.Configure(timeouts.Config{Catalog: appCfg.CatalogLoadTimeout})

	deps.Catalog.Start()

	if appCfg.CatalogWaitOnStart {
		ready := workers.WaitReady(ctx, func() bool {
			return deps.Catalog.Status().State != catalog.StateLoading
		})
		st := deps.Catalog.Status()
		switch {
		case !ready:
			logger.Warn("catalog still loading, serving anyway")
		case st.State == catalog.StateFailed:
			logger.Warn("initial catalog load failed, serving error page until reload", zap.Error(st.Err))
		}
	}

	if deps.Refresh != nil {
		deps.Refresh.Start()
	}

	return nil
}
