// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	activitymapfeature "github.com/dalemusser/activitymap/internal/app/features/activitymap"
	errorsfeature "github.com/dalemusser/activitymap/internal/app/features/errors"
	healthfeature "github.com/dalemusser/activitymap/internal/app/features/health"
	"github.com/dalemusser/activitymap/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, ConnectDB and Startup have completed.
// It boots the template engine, applies CSRF protection and mounts the
// dashboard, its JSON API, health, metrics and static assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.NotFound(errorsHandler.NotFound)

	// CSRF protection for the reload form. Safe methods pass through, so the
	// JSON API and health checks are unaffected.
	r.Use(markPlaintext)
	r.Use(csrf.Protect(appCfg.CSRFKey,
		csrf.Secure(coreCfg.Env == "prod"),
		csrf.Path("/"),
		csrf.ErrorHandler(csrfFailure(errorsHandler, logger)),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Catalog, deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", promhttp.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	mapHandler := activitymapfeature.NewHandler(deps.Catalog, deps.Categories, appCfg.GridVersions, errLog, logger)
	if appCfg.ReloadRateLimit > 0 {
		mapHandler.ReloadLimit = ratelimit.New(appCfg.ReloadRateLimit, time.Minute)
	}
	r.Mount("/api", activitymapfeature.APIRoutes(mapHandler))
	r.Mount("/", activitymapfeature.Routes(mapHandler))

	return r, nil
}

// markPlaintext tells gorilla/csrf when a request arrived over plain HTTP so
// its Referer check does not demand https (local dev, TLS-terminating proxy
// that does not set X-Forwarded-Proto).
func markPlaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(w, r)
	})
}

func csrfFailure(h *errorsfeature.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("csrf check failed",
			zap.String("path", r.URL.Path),
			zap.Error(csrf.FailureReason(r)))
		h.Forbidden(w, r)
	})
}
