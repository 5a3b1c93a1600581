// Package derive computes the secondary attributes of catalog activities.
//
// All functions are pure. Enrich is applied once per catalog load and turns
// the parser's raw records into immutable models.Activity values.
package derive

import (
	"strings"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/categories"
	"github.com/dalemusser/activitymap/internal/app/system/palette"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/google/uuid"
)

// continuousMarkers mark a frequency as spanning several versions.
var continuousMarkers = []string{"continuo", "24/7"}

// TextComplexity returns the display label for a complexity rating.
// Values other than 1 and 2 map to the highest label.
func TextComplexity(n int) string {
	switch n {
	case 1:
		return models.ComplexityLow
	case 2:
		return models.ComplexityMedium
	default:
		return models.ComplexityHigh
	}
}

// BackgroundColor returns the card class for a technology category index.
// See palette.Tech for the wrap policy.
func BackgroundColor(techCategory int) string {
	return palette.Tech(techCategory)
}

// SpansMultipleVersions reports whether a frequency denotes a continuous
// activity ("Continuo", "24/7"), case-insensitively.
func SpansMultipleVersions(frequency string) bool {
	f := strings.ToLower(frequency)
	for _, m := range continuousMarkers {
		if strings.Contains(f, m) {
			return true
		}
	}
	return false
}

// IDFunc generates activity identifiers.
type IDFunc func() string

// Result is the outcome of enriching one catalog load.
type Result struct {
	Activities []models.Activity
	// TechLabels lists technology-category labels in discovery order;
	// Activities[i].TechCategory indexes into it.
	TechLabels []string
}

// Enrich converts parsed records into activities, in input order.
// newID may be nil, in which case random UUIDs are used.
func Enrich(records []activitycsv.RawRecord, newID IDFunc) Result {
	if newID == nil {
		newID = uuid.NewString
	}

	techs := categories.NewTechIndex()
	out := make([]models.Activity, 0, len(records))
	for _, rec := range records {
		idx := techs.Add(rec.TechLabel)
		out = append(out, models.Activity{
			ID:                   newID(),
			Name:                 rec.Name,
			Description:          rec.Description,
			Frequency:            rec.Frequency,
			Detail:               rec.Detail,
			System:               rec.System,
			Version:              rec.Version,
			Category:             rec.Category,
			MainCategory:         categories.MainCategory(rec.Category),
			Requirements:         rec.Requirements,
			Technologies:         rec.Requirements,
			Complexity:           rec.Complexity,
			TextComplexity:       TextComplexity(rec.Complexity),
			TechCategory:         idx,
			TechCategoryLabel:    rec.TechLabel,
			BackgroundColor:      BackgroundColor(idx),
			SpanMultipleVersions: SpansMultipleVersions(rec.Frequency),
			Line:                 rec.Line,
		})
	}

	return Result{Activities: out, TechLabels: techs.Labels()}
}
