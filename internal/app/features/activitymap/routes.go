// internal/app/features/activitymap/routes.go
package activitymap

import "github.com/go-chi/chi/v5"

// Routes returns the router for the dashboard pages.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Main dashboard page
	r.Get("/", h.ServeDashboard)

	// HTMX endpoint for grid refresh
	r.Get("/grid", h.ServeGrid)

	// Detail popup
	r.Get("/activities/{id}", h.ServeDetail)

	// Manual reload (CSRF protected by the global middleware)
	r.Post("/catalog/reload", h.HandleReload)

	return r
}

// APIRoutes returns the router for the JSON API, mounted under /api.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/activities", h.ServeAPIActivities)
	r.Get("/grid", h.ServeAPIGrid)
	r.Get("/catalog", h.ServeAPICatalog)
	return r
}
