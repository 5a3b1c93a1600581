package activityfilter_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/dalemusser/activitymap/internal/testutil"
)

func names(as []models.Activity) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}

func TestFilter_ZeroCriteriaMatchesAll(t *testing.T) {
	all := testutil.SampleActivities(t)
	got := activityfilter.Filter(all, activityfilter.Criteria{}, nil)
	if len(got) != len(all) {
		t.Errorf("expected %d activities, got %d", len(all), len(got))
	}
	if !(activityfilter.Criteria{}).IsZero() {
		t.Error("zero Criteria should report IsZero")
	}
}

func TestFilter_Search(t *testing.T) {
	all := testutil.SampleActivities(t)

	tests := []struct {
		search string
		want   []string
	}{
		{"check", []string{"Check-in"}},
		{"CHECK", []string{"Check-in"}},
		{"xyz", []string{}},
		{"guest arrival", []string{"Check-in"}},
		{"reserva", []string{"Tours locales", "Reservas online"}},
		// Search folds diacritics on both sides.
		{"prediccion", []string{"Predicción de ocupación"}},
		{"HUÉSPED", []string{"Chat huéspedes"}},
		{"mensajeria", []string{"Chat huéspedes"}},
		{"  check  ", []string{"Check-in"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		got := names(activityfilter.Filter(all, activityfilter.Criteria{Search: tt.search}, nil))
		if tt.want == nil {
			if len(got) != len(all) {
				t.Errorf("search %q: expected all %d activities, got %d", tt.search, len(all), len(got))
			}
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("search %q: got %v, want %v", tt.search, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("search %q [%d]: got %q, want %q", tt.search, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFilter_Complexity(t *testing.T) {
	all := testutil.SampleActivities(t)
	got := activityfilter.Filter(all, activityfilter.Criteria{Complexity: 3}, nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 high-complexity activities, got %d: %v", len(got), names(got))
	}
	for _, a := range got {
		if a.Complexity != 3 {
			t.Errorf("%s has complexity %d", a.Name, a.Complexity)
		}
	}
}

func TestFilter_TechCategoryIsOneBased(t *testing.T) {
	all := testutil.SampleActivities(t)

	// Selector 1 is the first discovered label ("Core", index 0).
	got := activityfilter.Filter(all, activityfilter.Criteria{TechCategory: 1}, nil)
	for _, a := range got {
		if a.TechCategory != 0 {
			t.Errorf("%s: TechCategory %d, want 0", a.Name, a.TechCategory)
		}
	}
	want := []string{"Check-in", "Inventario", "Chat huéspedes", "Mantenimiento externo"}
	if g := names(got); strings.Join(g, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", g, want)
	}

	// No label has index 3, so selector 4 matches nothing.
	if got := activityfilter.Filter(all, activityfilter.Criteria{TechCategory: 4}, nil); len(got) != 0 {
		t.Errorf("selector past the last label should match nothing, got %v", names(got))
	}

	// Selector 3 is "Web".
	web := activityfilter.Filter(all, activityfilter.Criteria{TechCategory: 3}, nil)
	for _, a := range web {
		if a.TechCategoryLabel != "Web" {
			t.Errorf("%s: label %q, want Web", a.Name, a.TechCategoryLabel)
		}
	}
	if len(web) != 4 {
		t.Errorf("expected 4 Web activities, got %d", len(web))
	}
}

func TestFilter_Category(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)

	got := activityfilter.Filter(all, activityfilter.Criteria{Category: "SERVICIOS EXTERNOS"}, tbl)
	want := []string{"Tours locales", "Traslados"}
	if g := names(got); len(g) != 2 || g[0] != want[0] || g[1] != want[1] {
		t.Errorf("got %v, want %v", g, want)
	}

	if got := activityfilter.Filter(all, activityfilter.Criteria{Category: "NO EXISTE"}, tbl); len(got) != 0 {
		t.Errorf("unknown category should match nothing, got %v", names(got))
	}
	if got := activityfilter.Filter(all, activityfilter.Criteria{Category: "SERVICIOS EXTERNOS"}, nil); len(got) != 0 {
		t.Errorf("nil classifier should match nothing, got %v", names(got))
	}
}

func TestFilter_Conjunction(t *testing.T) {
	all := testutil.SampleActivities(t)
	c := activityfilter.Criteria{Search: "o", Complexity: 3, TechCategory: 3}
	for _, a := range activityfilter.Filter(all, c, nil) {
		if a.Complexity != 3 || a.TechCategory != 2 {
			t.Errorf("%s does not satisfy all predicates", a.Name)
		}
	}
}

func TestFilter_PureAndOrderPreserving(t *testing.T) {
	all := testutil.SampleActivities(t)
	before := names(all)

	got := activityfilter.Filter(all, activityfilter.Criteria{Complexity: 2}, nil)

	after := names(all)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input was modified at %d: %q -> %q", i, before[i], after[i])
		}
	}

	// Survivors appear in the same relative order as in the input.
	pos := make(map[string]int, len(all))
	for i, a := range all {
		pos[a.ID] = i
	}
	for i := 1; i < len(got); i++ {
		if pos[got[i-1].ID] >= pos[got[i].ID] {
			t.Errorf("order not preserved between %q and %q", got[i-1].Name, got[i].Name)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := testutil.SampleActivities(t)
	tbl := testutil.SampleCategories(t)

	criteria := []activityfilter.Criteria{
		{},
		{Search: "o"},
		{Complexity: 2},
		{TechCategory: 2},
		{Category: "OPERACIÓN INTERNA", Search: "c"},
	}
	for _, c := range criteria {
		once := activityfilter.Filter(all, c, tbl)
		twice := activityfilter.Filter(once, c, tbl)
		if len(once) != len(twice) {
			t.Errorf("%+v: not idempotent (%d vs %d)", c, len(once), len(twice))
			continue
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Errorf("%+v: mismatch at %d", c, i)
			}
		}
	}
}
