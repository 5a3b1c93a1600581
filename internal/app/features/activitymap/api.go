// internal/app/features/activitymap/api.go
package activitymap

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/activitymap/internal/app/system/categories"
	"github.com/dalemusser/activitymap/internal/app/system/grid"
	"github.com/dalemusser/activitymap/internal/app/system/metrics"
	"github.com/dalemusser/activitymap/internal/app/system/stats"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"go.uber.org/zap"
)

type criteriaJSON struct {
	Search       string `json:"q"`
	Complexity   int    `json:"complexity"`
	TechCategory int    `json:"tech"`
	Category     string `json:"category"`
}

type activitiesResponse struct {
	Criteria   criteriaJSON      `json:"criteria"`
	Summary    stats.Summary     `json:"summary"`
	Activities []models.Activity `json:"activities"`
}

type gridCellJSON struct {
	Category   string   `json:"category"`
	Activities []string `json:"activities"`
}

type gridRowJSON struct {
	Version       string         `json:"version"`
	HasActivities bool           `json:"has_activities"`
	Cells         []gridCellJSON `json:"cells"`
}

type gridResponse struct {
	Criteria   criteriaJSON  `json:"criteria"`
	Versions   []string      `json:"versions"`
	Categories []string      `json:"categories"`
	Total      int           `json:"total"`
	Rows       []gridRowJSON `json:"rows"`
}

type catalogResponse struct {
	State        string                 `json:"state"`
	Reloading    bool                   `json:"reloading"`
	Error        string                 `json:"error,omitempty"`
	Source       string                 `json:"source,omitempty"`
	Path         string                 `json:"path,omitempty"`
	LoadedAt     *time.Time             `json:"loaded_at,omitempty"`
	Activities   int                    `json:"activities"`
	Dropped      int                    `json:"dropped_lines"`
	RowErrors    []activitycsv.RowError `json:"row_errors"`
	TechLabels   []string               `json:"tech_categories"`
	DataVersions []string               `json:"data_versions"`
	GridVersions []string               `json:"grid_versions"`
	Categories   []categories.Category  `json:"categories"`
}

type errorResponse struct {
	Error string `json:"error"`
	State string `json:"state"`
}

// ServeAPIActivities returns the filtered activities and their summary.
// GET /api/activities?q=&complexity=&tech=&category=
func (h *Handler) ServeAPIActivities(w http.ResponseWriter, r *http.Request) {
	metrics.RecordView("api_activities")

	cat, ok := h.apiCatalog(w)
	if !ok {
		return
	}

	c := h.parseCriteria(r, len(cat.TechLabels()))
	filtered := activityfilter.Filter(cat.Activities(), c, h.Categories)
	if filtered == nil {
		filtered = []models.Activity{}
	}

	h.writeJSON(w, http.StatusOK, activitiesResponse{
		Criteria:   toCriteriaJSON(c),
		Summary:    stats.Aggregate(filtered),
		Activities: filtered,
	})
}

// ServeAPIGrid returns the organized grid with activity IDs per cell.
// GET /api/grid?q=&complexity=&tech=&category=
func (h *Handler) ServeAPIGrid(w http.ResponseWriter, r *http.Request) {
	metrics.RecordView("api_grid")

	cat, ok := h.apiCatalog(w)
	if !ok {
		return
	}

	c := h.parseCriteria(r, len(cat.TechLabels()))
	_, g := h.organize(cat, c)

	h.writeJSON(w, http.StatusOK, toGridResponse(c, g))
}

// ServeAPICatalog reports the load state and parse diagnostics. It answers
// 200 in every state so clients can poll it during startup.
// GET /api/catalog
func (h *Handler) ServeAPICatalog(w http.ResponseWriter, r *http.Request) {
	metrics.RecordView("api_catalog")

	st := h.Catalog.Status()
	resp := catalogResponse{
		State:        string(st.State),
		Reloading:    st.Reloading,
		RowErrors:    []activitycsv.RowError{},
		TechLabels:   []string{},
		DataVersions: []string{},
		GridVersions: h.gridVersions(),
		Categories:   h.Categories.Categories(),
	}
	if st.Err != nil {
		resp.Error = st.Err.Error()
	}
	if cat := st.Catalog; cat != nil {
		loaded := cat.LoadedAt
		resp.Source = cat.Source
		resp.Path = cat.Path
		resp.LoadedAt = &loaded
		resp.Activities = cat.Len()
		resp.Dropped = cat.Dropped()
		if errs := cat.RowErrors(); errs != nil {
			resp.RowErrors = errs
		}
		if labels := cat.TechLabels(); labels != nil {
			resp.TechLabels = labels
		}
		if versions := cat.Versions(); versions != nil {
			resp.DataVersions = versions
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) apiCatalog(w http.ResponseWriter) (*catalog.Catalog, bool) {
	cat, err := h.Catalog.Current()
	if err == nil {
		return cat, true
	}

	state := catalog.StateFailed
	if errors.Is(err, catalog.ErrNotLoaded) {
		state = catalog.StateLoading
	}
	h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), State: string(state)})
	return nil, false
}

func (h *Handler) gridVersions() []string {
	if h.Versions != nil {
		return append([]string(nil), h.Versions...)
	}
	return append([]string(nil), grid.DefaultVersions...)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("encode json response", zap.Error(err))
	}
}

func toCriteriaJSON(c activityfilter.Criteria) criteriaJSON {
	return criteriaJSON{
		Search:       c.Search,
		Complexity:   c.Complexity,
		TechCategory: c.TechCategory,
		Category:     c.Category,
	}
}

func toGridResponse(c activityfilter.Criteria, g *grid.Grid) gridResponse {
	resp := gridResponse{
		Criteria:   toCriteriaJSON(c),
		Versions:   g.Versions(),
		Categories: g.Categories(),
		Total:      g.Total(),
	}
	for _, row := range g.Rows() {
		rj := gridRowJSON{Version: row.Version, HasActivities: row.HasActivities()}
		for _, cell := range row.Cells {
			ids := make([]string, 0, len(cell.Activities))
			for _, a := range cell.Activities {
				ids = append(ids, a.ID)
			}
			rj.Cells = append(rj.Cells, gridCellJSON{Category: cell.Category, Activities: ids})
		}
		resp.Rows = append(resp.Rows, rj)
	}
	return resp
}
