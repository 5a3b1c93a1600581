// internal/app/features/activitymap/types.go
package activitymap

import (
	"html/template"

	"github.com/dalemusser/activitymap/internal/app/system/stats"
	"github.com/dalemusser/activitymap/internal/app/system/viewdata"
)

// Option is one entry of a filter select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FiltersVM holds the current filter selection and the select options.
type FiltersVM struct {
	Search            string
	ComplexityOptions []Option
	TechOptions       []Option
	CategoryOptions   []Option
	Active            bool
}

// LegendItem is one tech-category chip in the color legend.
type LegendItem struct {
	Label string
	Class string
}

// CardVM is one activity card in the grid.
type CardVM struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Class           string // background + span classes
	Technologies    []string
	MoreTechs       int
	ComplexityLabel string
	ComplexityClass string
}

// CellVM is one (version, category) cell.
type CellVM struct {
	Category string
	Cards    []CardVM
}

// RowVM is one visible version row.
type RowVM struct {
	Version string
	Cells   []CellVM
}

// GridVM is the content refreshed by the HTMX grid endpoint.
type GridVM struct {
	Stats      stats.Summary
	MaxVersion string
	Rows       []RowVM
	Categories []string
	Placed     int
	Empty      bool
}

// PageData is the view model for the dashboard page.
type PageData struct {
	viewdata.BaseVM
	Filters   FiltersVM
	Legend    []LegendItem
	Grid      GridVM
	Warning   template.HTML
	Reloading bool
	LoadedAt  string
	Source    string
}

// LoadingData is the view model shown while the first load runs.
type LoadingData struct {
	viewdata.BaseVM
	RefreshSeconds int
}

// DetailVM is the view model for the detail popup.
type DetailVM struct {
	ID              string
	Name            string
	Version         string
	Category        string
	MainCategory    string
	HeaderClass     string
	ComplexityLabel string
	ComplexityClass string
	Description     string
	Frequency       string
	Detail          template.HTML
	Systems         []string
	Technologies    []string
	TechCategory    string
	TechClass       string
	SpansVersions   bool
	Line            int
}
