// Package activityfilter narrows the catalog to the activities matching the
// dashboard's search box and filter selects.
package activityfilter

import (
	"strings"

	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Criteria is the conjunctive filter applied to the catalog.
// Zero values disable the corresponding predicate.
type Criteria struct {
	// Search is matched as a substring of Name or Description after both
	// sides are folded with text.Fold (lowercased, diacritics removed,
	// surrounding space trimmed), so "operacion" matches "Operación".
	Search string
	// Complexity selects activities with exactly this rating (0 = any).
	Complexity int
	// TechCategory is the 1-based technology-category selector value:
	// 0 = any, n selects activities whose TechCategory index is n-1.
	TechCategory int
	// Category selects a coarse category by name ("" = any).
	Category string
}

// IsZero reports whether the criteria match every activity.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && c.Complexity == 0 && c.TechCategory == 0 && c.Category == ""
}

// Classifier resolves an activity category code to its coarse category.
type Classifier interface {
	Classify(code string) (name string, ok bool)
}

// Filter returns the activities matching c, preserving their relative order.
// The input slice is not modified. cls is only consulted when c.Category is
// set and may be nil otherwise.
func Filter(activities []models.Activity, c Criteria, cls Classifier) []models.Activity {
	needle := text.Fold(strings.TrimSpace(c.Search))

	out := make([]models.Activity, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		if !matchesSearch(a, needle) {
			continue
		}
		if c.Complexity != 0 && a.Complexity != c.Complexity {
			continue
		}
		if c.TechCategory != 0 && a.TechCategory+1 != c.TechCategory {
			continue
		}
		if c.Category != "" && !matchesCategory(a, c.Category, cls) {
			continue
		}
		out = append(out, *a)
	}
	return out
}

func matchesSearch(a *models.Activity, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(text.Fold(a.Name), needle) ||
		strings.Contains(text.Fold(a.Description), needle)
}

func matchesCategory(a *models.Activity, category string, cls Classifier) bool {
	if cls == nil {
		return false
	}
	name, ok := cls.Classify(a.Category)
	return ok && name == category
}
