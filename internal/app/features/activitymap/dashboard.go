// internal/app/features/activitymap/dashboard.go
package activitymap

import (
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/activitymap/internal/app/system/grid"
	"github.com/dalemusser/activitymap/internal/app/system/metrics"
	"github.com/dalemusser/activitymap/internal/app/system/viewdata"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// maxWarningLines is how many dropped lines the warning banner lists.
const maxWarningLines = 5

// loadingRefresh is how often the loading page polls, in seconds.
const loadingRefresh = 2

// ServeDashboard renders the main dashboard page.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	metrics.RecordView("dashboard")

	cat, ok := h.currentCatalog(w, r)
	if !ok {
		return
	}

	c := h.parseCriteria(r, len(cat.TechLabels()))
	filtered, g := h.organize(cat, c)
	st := h.Catalog.Status()

	data := PageData{
		BaseVM:    viewdata.NewBaseVM(r, viewdata.SiteName(), "/"),
		Filters:   buildFilters(c, cat.TechLabels(), h.Categories.Names()),
		Legend:    buildLegend(cat.TechLabels()),
		Grid:      buildGrid(filtered, g),
		Warning:   activitycsv.FormatRowErrors(cat.RowErrors(), maxWarningLines),
		Reloading: st.Reloading,
		LoadedAt:  cat.LoadedAt.Format(time.DateTime),
		Source:    cat.Source,
	}

	templates.Render(w, r, "activitymap_view", data)
}

// ServeGrid renders just the stats and grid for HTMX refresh.
func (h *Handler) ServeGrid(w http.ResponseWriter, r *http.Request) {
	metrics.RecordView("grid")

	cat, err := h.Catalog.Current()
	if err != nil {
		h.Log.Debug("grid requested without catalog")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	c := h.parseCriteria(r, len(cat.TechLabels()))
	filtered, g := h.organize(cat, c)

	templates.RenderSnippet(w, "activitymap_grid", buildGrid(filtered, g))
}

func (h *Handler) organize(cat *catalog.Catalog, c activityfilter.Criteria) ([]models.Activity, *grid.Grid) {
	filtered := activityfilter.Filter(cat.Activities(), c, h.Categories)
	return filtered, grid.Organize(filtered, h.Categories, h.Versions)
}

// currentCatalog returns the published catalog. When there is none it
// renders the loading or load-failed page and returns false.
func (h *Handler) currentCatalog(w http.ResponseWriter, r *http.Request) (*catalog.Catalog, bool) {
	cat, err := h.Catalog.Current()
	switch {
	case err == nil:
		return cat, true
	case errors.Is(err, catalog.ErrNotLoaded):
		data := LoadingData{
			BaseVM:         viewdata.NewBaseVM(r, "Cargando catálogo", "/"),
			RefreshSeconds: loadingRefresh,
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		templates.Render(w, r, "activitymap_loading", data)
	default:
		h.ErrLog.LogUnavailable(w, r, "catalog unavailable", err,
			"No se pudo cargar el catálogo",
			"El catálogo de actividades no está disponible. Revisa el archivo publicado y vuelve a cargarlo.")
	}
	return nil, false
}
