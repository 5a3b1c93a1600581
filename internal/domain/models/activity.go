// internal/domain/models/activity.go
package models

// Complexity labels shown in the dashboard.
const (
	ComplexityLow    = "Baja"
	ComplexityMedium = "Media"
	ComplexityHigh   = "Alta"
)

// Activity is a single catalog entry after parsing and enrichment.
//
// Activities are created once per catalog load and never modified afterwards.
// Requirements and Technologies hold the same sequence; both names are kept
// because the catalog and the dashboard refer to the list differently.
type Activity struct {
	ID string `json:"id"` // uuid, stable for the loaded catalog

	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Detail      string `json:"detail"`
	System      string `json:"system"`
	Version     string `json:"version"` // "1".."4" expected, any string tolerated

	Category     string `json:"category"`      // e.g. "IH-Op"
	MainCategory string `json:"main_category"` // prefix before the first '-', e.g. "IH"

	Requirements []string `json:"requirements"`
	Technologies []string `json:"technologies"`

	Complexity     int    `json:"complexity"`
	TextComplexity string `json:"text_complexity"`

	TechCategory      int    `json:"tech_category"` // zero-based, first-seen order
	TechCategoryLabel string `json:"tech_category_label"`
	BackgroundColor   string `json:"background_color"`

	SpanMultipleVersions bool `json:"span_multiple_versions"`

	// Line is the 1-based source line the activity was parsed from.
	Line int `json:"line"`
}

// IsHighComplexity reports whether the activity carries the top complexity rating.
func (a *Activity) IsHighComplexity() bool {
	return a.Complexity == 3
}
