package grid_test

import (
	"testing"

	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/activitymap/internal/app/system/grid"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/dalemusser/activitymap/internal/testutil"
)

func cellNames(t *testing.T, g *grid.Grid, version, category string) []string {
	t.Helper()
	acts, known := g.Cell(version, category)
	if !known {
		t.Fatalf("cell (%s, %s) should be known", version, category)
	}
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Name
	}
	return out
}

func TestOrganize_ExampleActivityPlacement(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)

	g := grid.Organize(all, tbl, nil)

	got := cellNames(t, g, "1", "OPERACIÓN INTERNA")
	if len(got) != 2 || got[0] != "Check-in" || got[1] != "Control de accesos" {
		t.Errorf("cell (1, OPERACIÓN INTERNA): got %v", got)
	}
}

func TestOrganize_AllCellsInitialized(t *testing.T) {
	tbl := testutil.SampleCategories(t)
	g := grid.Organize(nil, tbl, nil)

	for _, v := range grid.DefaultVersions {
		for _, c := range tbl.Names() {
			acts, known := g.Cell(v, c)
			if !known {
				t.Errorf("cell (%s, %s) missing", v, c)
			}
			if acts == nil || len(acts) != 0 {
				t.Errorf("cell (%s, %s) should be empty, got %v", v, c, acts)
			}
		}
	}

	if _, known := g.Cell("5", "OPERACIÓN INTERNA"); known {
		t.Error("version 5 should not be known")
	}
	if _, known := g.Cell("1", "NO EXISTE"); known {
		t.Error("unknown category should not be known")
	}
	if g.Total() != 0 {
		t.Errorf("Total: got %d, want 0", g.Total())
	}
}

func TestOrganize_DropsUnplaceable(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)
	g := grid.Organize(all, tbl, nil)

	if g.Total() != 8 {
		t.Errorf("Total: got %d, want 8", g.Total())
	}
	if g.Total() > len(all) {
		t.Errorf("grid total %d exceeds filtered size %d", g.Total(), len(all))
	}

	for _, row := range g.Rows() {
		for _, cell := range row.Cells {
			for _, a := range cell.Activities {
				if a.Name == "Mantenimiento externo" || a.Name == "Piloto futuro" {
					t.Errorf("%q should not be in the grid", a.Name)
				}
			}
		}
	}
}

func TestOrganize_EachActivityAtMostOnce(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)
	g := grid.Organize(all, tbl, nil)

	seen := make(map[string]int)
	sum := 0
	for _, row := range g.Rows() {
		for _, cell := range row.Cells {
			for _, a := range cell.Activities {
				seen[a.ID]++
				sum++
			}
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("activity %s appears %d times", id, n)
		}
	}
	if sum != g.Total() {
		t.Errorf("sum of cells %d != Total %d", sum, g.Total())
	}
}

func TestOrganize_EqualityWhenAllPlaceable(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)

	var placeable []models.Activity
	for _, a := range all {
		if a.Name != "Mantenimiento externo" && a.Name != "Piloto futuro" {
			placeable = append(placeable, a)
		}
	}
	g := grid.Organize(placeable, tbl, nil)
	if g.Total() != len(placeable) {
		t.Errorf("Total: got %d, want %d", g.Total(), len(placeable))
	}
}

func TestOrganize_PreservesOrderWithinCell(t *testing.T) {
	acts := testutil.ParseActivities(t, "C;d;f;x;s;1;IH-Op;PMS\nA;d;f;x;s;1;IH-Seg;PMS\nB;d;f;x;s;1;IH-Op;PMS\n")
	tbl := testutil.SampleCategories(t)

	g := grid.Organize(acts, tbl, nil)
	got := cellNames(t, g, "1", "OPERACIÓN INTERNA")
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell order [%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrganize_AfterFilter(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)

	filtered := activityfilter.Filter(all, activityfilter.Criteria{Complexity: 3}, tbl)
	g := grid.Organize(filtered, tbl, nil)
	if g.Total() != 4 {
		t.Errorf("Total: got %d, want 4", g.Total())
	}
	if got := cellNames(t, g, "4", "ANÁLISIS Y PREDICCIÓN"); len(got) != 1 || got[0] != "Predicción de ocupación" {
		t.Errorf("cell (4, ANÁLISIS Y PREDICCIÓN): got %v", got)
	}
}

func TestRows_Order(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)
	g := grid.Organize(all, tbl, nil)

	rows := g.Rows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	names := tbl.Names()
	for i, row := range rows {
		if row.Version != grid.DefaultVersions[i] {
			t.Errorf("row %d: version %q", i, row.Version)
		}
		for j, cell := range row.Cells {
			if cell.Category != names[j] {
				t.Errorf("row %d cell %d: category %q, want %q", i, j, cell.Category, names[j])
			}
		}
		if !row.HasActivities() {
			t.Errorf("row %s should have activities", row.Version)
		}
	}
	if rows[0].Count() != 3 {
		t.Errorf("row 1 count: got %d, want 3", rows[0].Count())
	}
}

func TestOrganize_CustomVersions(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)
	g := grid.Organize(all, tbl, []string{"5"})

	if got := cellNames(t, g, "5", "OPERACIÓN INTERNA"); len(got) != 1 || got[0] != "Piloto futuro" {
		t.Errorf("cell (5, OPERACIÓN INTERNA): got %v", got)
	}
	if len(g.Versions()) != 1 {
		t.Errorf("Versions: got %v", g.Versions())
	}
	row := g.Rows()[0]
	empty := grid.Row{Version: "x", Cells: []grid.Cell{{}}}
	if !row.HasActivities() || empty.HasActivities() {
		t.Error("HasActivities mismatch")
	}
}
