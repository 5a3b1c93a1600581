// internal/app/features/activitymap/detail.go
package activitymap

import (
	"net/http"

	uierrors "github.com/dalemusser/activitymap/internal/app/features/errors"
	"github.com/dalemusser/activitymap/internal/app/system/metrics"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeDetail renders the detail popup for one activity. HTMX requests get
// the bare partial; direct visits get it wrapped in the page layout.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	metrics.RecordView("detail")

	cat, ok := h.currentCatalog(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	a, found := cat.Activity(id)
	if !found {
		uierrors.RenderNotFound(w, r, "La actividad no existe o el catálogo se ha recargado.", "/")
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "activitymap_detail", buildDetail(a))
		return
	}
	templates.Render(w, r, "activitymap_detail_page", buildDetail(a))
}
