// internal/app/features/activitymap/reload.go
package activitymap

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/activitymap/internal/app/features/errors"
	"github.com/dalemusser/activitymap/internal/app/system/ratelimit"
	"github.com/dalemusser/activitymap/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleReload re-fetches the catalog and redirects back to the dashboard.
// Failures are not rendered here: the dashboard shows the failed state.
// POST /catalog/reload
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if h.ReloadLimit != nil {
		ip := ratelimit.ClientIP(r)
		if !h.ReloadLimit.Allow(ip) {
			h.Log.Warn("catalog reload rate limited", zap.String("client_ip", ip))
			retry := int(h.ReloadLimit.RetryAfter(ip).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			uierrors.RenderTooManyRequests(w, r, "Se han solicitado demasiadas recargas. Espera un momento e inténtalo de nuevo.")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Request())
	defer cancel()

	cat, err := h.Catalog.Reload(ctx)
	switch {
	case err == nil:
		h.Log.Info("catalog reloaded on request",
			zap.Int("activities", cat.Len()),
			zap.Int("dropped_lines", cat.Dropped()))
	case errors.Is(err, context.DeadlineExceeded):
		h.Log.Warn("catalog reload still running, redirecting", zap.Error(err))
	default:
		h.Log.Warn("catalog reload failed", zap.Error(err))
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
