// Package catalog owns the loaded activity catalog: one immutable snapshot
// per load, published atomically, with a loading/ready/failed state machine.
package catalog

import (
	"sort"
	"strconv"
	"time"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/domain/models"
)

// Catalog is one loaded snapshot. It is never mutated after publication.
type Catalog struct {
	activities []models.Activity
	techLabels []string
	errors     []activitycsv.RowError
	byID       map[string]int
	versions   []string

	Source   string
	Path     string
	LoadedAt time.Time
}

func newCatalog(activities []models.Activity, techLabels []string, errs []activitycsv.RowError) *Catalog {
	c := &Catalog{
		activities: activities,
		techLabels: techLabels,
		errors:     errs,
		byID:       make(map[string]int, len(activities)),
	}

	seen := make(map[string]bool)
	for i, a := range activities {
		c.byID[a.ID] = i
		if !seen[a.Version] {
			seen[a.Version] = true
			c.versions = append(c.versions, a.Version)
		}
	}
	sort.SliceStable(c.versions, func(i, j int) bool {
		return versionLess(c.versions[i], c.versions[j])
	})

	return c
}

// versionLess orders numeric versions numerically, before any others.
func versionLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}

// Activities returns the loaded activities in file order. The slice is shared;
// callers must not modify it.
func (c *Catalog) Activities() []models.Activity {
	return c.activities
}

// Activity returns the activity with the given ID.
func (c *Catalog) Activity(id string) (models.Activity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Activity{}, false
	}
	return c.activities[i], true
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	return len(c.activities)
}

// TechLabels returns the technology-category labels in discovery order.
func (c *Catalog) TechLabels() []string {
	return append([]string(nil), c.techLabels...)
}

// RowErrors returns the diagnostics for lines dropped during parsing.
func (c *Catalog) RowErrors() []activitycsv.RowError {
	return append([]activitycsv.RowError(nil), c.errors...)
}

// Dropped returns the number of dropped lines.
func (c *Catalog) Dropped() int {
	return len(c.errors)
}

// Versions returns the distinct versions found in the data, numeric first.
func (c *Catalog) Versions() []string {
	return append([]string(nil), c.versions...)
}
