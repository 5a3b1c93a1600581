// Package grid groups filtered activities into the version × coarse category
// layout of the dashboard.
package grid

import "github.com/dalemusser/activitymap/internal/domain/models"

// DefaultVersions are the version rows shown by the dashboard, in order.
var DefaultVersions = []string{"1", "2", "3", "4"}

// Table is the part of the category table the organizer needs.
type Table interface {
	Classify(code string) (name string, ok bool)
	Names() []string
}

// Cell is one (version, category) slot.
type Cell struct {
	Version    string
	Category   string
	Activities []models.Activity
}

// Row is one version with a cell per coarse category, in table order.
type Row struct {
	Version string
	Cells   []Cell
}

// HasActivities reports whether any cell in the row is non-empty.
func (r Row) HasActivities() bool {
	for _, c := range r.Cells {
		if len(c.Activities) > 0 {
			return true
		}
	}
	return false
}

// Count returns the number of activities in the row.
func (r Row) Count() int {
	n := 0
	for _, c := range r.Cells {
		n += len(c.Activities)
	}
	return n
}

// Grid is the organized view of one filtered snapshot.
type Grid struct {
	versions   []string
	categories []string
	cells      map[string]map[string][]models.Activity
	total      int
}

// Organize places each activity in the cell given by its version and coarse
// category. Every cell for versions × tbl.Names() exists, even when empty.
// Activities with an unknown version or no matching category are left out.
// Cells keep the relative order of filtered. A nil versions uses DefaultVersions.
func Organize(filtered []models.Activity, tbl Table, versions []string) *Grid {
	if versions == nil {
		versions = DefaultVersions
	}

	g := &Grid{
		versions:   append([]string(nil), versions...),
		categories: tbl.Names(),
		cells:      make(map[string]map[string][]models.Activity, len(versions)),
	}
	for _, v := range g.versions {
		row := make(map[string][]models.Activity, len(g.categories))
		for _, c := range g.categories {
			row[c] = []models.Activity{}
		}
		g.cells[v] = row
	}

	for _, a := range filtered {
		row, ok := g.cells[a.Version]
		if !ok {
			continue
		}
		cat, ok := tbl.Classify(a.Category)
		if !ok {
			continue
		}
		cell, ok := row[cat]
		if !ok {
			continue
		}
		row[cat] = append(cell, a)
		g.total++
	}

	return g
}

// Cell returns the activities of a cell. known is false when the version or
// category is not part of the grid, which callers can tell apart from an
// empty cell.
func (g *Grid) Cell(version, category string) (activities []models.Activity, known bool) {
	row, ok := g.cells[version]
	if !ok {
		return nil, false
	}
	activities, known = row[category]
	return activities, known
}

// Rows returns the grid in display order.
func (g *Grid) Rows() []Row {
	rows := make([]Row, 0, len(g.versions))
	for _, v := range g.versions {
		row := Row{Version: v, Cells: make([]Cell, 0, len(g.categories))}
		for _, c := range g.categories {
			row.Cells = append(row.Cells, Cell{
				Version:    v,
				Category:   c,
				Activities: g.cells[v][c],
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// Versions returns the version rows in order.
func (g *Grid) Versions() []string {
	return append([]string(nil), g.versions...)
}

// Categories returns the category columns in order.
func (g *Grid) Categories() []string {
	return append([]string(nil), g.categories...)
}

// Total returns the number of activities placed in the grid.
func (g *Grid) Total() int {
	return g.total
}
