// internal/app/features/activitymap/request.go
package activitymap

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/waffle/pantry/query"
)

// Query parameter names shared by the page, the grid partial and the API.
const (
	paramSearch     = "q"
	paramComplexity = "complexity"
	paramTech       = "tech"
	paramCategory   = "category"
)

// maxComplexity is the highest selectable complexity rating.
const maxComplexity = 3

// parseCriteria reads the filter selection from the query string.
// Out-of-range or malformed values fall back to "any", so a stale link never
// produces an error page. techCount is the number of discovered tech labels.
func (h *Handler) parseCriteria(r *http.Request, techCount int) activityfilter.Criteria {
	c := activityfilter.Criteria{
		Search: query.Search(r, paramSearch),
	}

	if n, err := strconv.Atoi(query.Get(r, paramComplexity)); err == nil && n >= 0 && n <= maxComplexity {
		c.Complexity = n
	}

	if n, err := strconv.Atoi(query.Get(r, paramTech)); err == nil && n >= 0 && n <= techCount {
		c.TechCategory = n
	}

	if name := query.Get(r, paramCategory); name != "" && h.Categories.Has(name) {
		c.Category = name
	}

	return c
}
