package derive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/palette"
	"github.com/dalemusser/activitymap/internal/domain/models"
)

func TestTextComplexity(t *testing.T) {
	tests := map[int]string{
		1:  models.ComplexityLow,
		2:  models.ComplexityMedium,
		3:  models.ComplexityHigh,
		0:  models.ComplexityHigh,
		-4: models.ComplexityHigh,
		9:  models.ComplexityHigh,
	}
	for in, want := range tests {
		if got := TextComplexity(in); got != want {
			t.Errorf("TextComplexity(%d): got %q, want %q", in, got, want)
		}
	}
}

func TestSpansMultipleVersions(t *testing.T) {
	tests := map[string]bool{
		"Continuo":           true,
		"Monitoreo CONTINUO": true,
		"24/7":               true,
		"Soporte 24/7":       true,
		"Diario":             false,
		"":                   false,
		"24/5":               false,
	}
	for in, want := range tests {
		if got := SpansMultipleVersions(in); got != want {
			t.Errorf("SpansMultipleVersions(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestBackgroundColor_Wraps(t *testing.T) {
	if BackgroundColor(0) != palette.Tech(0) {
		t.Error("index 0 should use first palette entry")
	}
	if BackgroundColor(palette.TechSize()) != BackgroundColor(0) {
		t.Error("index past palette should wrap")
	}
}

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestEnrich_ExampleRecord(t *testing.T) {
	line := `"Check-in";"Guest arrival";"Diario";"";"PMS";"1";"IH-Op";"PMS,WiFi";2;"Core"`
	parsed, err := activitycsv.Parse(strings.NewReader(line), activitycsv.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res := Enrich(parsed.Records, nil)
	if len(res.Activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(res.Activities))
	}

	a := res.Activities[0]
	if a.ID == "" {
		t.Error("expected generated ID")
	}
	if a.Complexity != 2 || a.TextComplexity != "Media" {
		t.Errorf("complexity: got %d/%q, want 2/Media", a.Complexity, a.TextComplexity)
	}
	if a.TechCategory != 0 {
		t.Errorf("TechCategory: got %d, want 0", a.TechCategory)
	}
	if a.TechCategoryLabel != "Core" {
		t.Errorf("TechCategoryLabel: got %q, want Core", a.TechCategoryLabel)
	}
	if a.MainCategory != "IH" {
		t.Errorf("MainCategory: got %q, want IH", a.MainCategory)
	}
	if a.BackgroundColor != palette.Tech(0) {
		t.Errorf("BackgroundColor: got %q", a.BackgroundColor)
	}
	if a.SpanMultipleVersions {
		t.Error("Diario must not span versions")
	}
	if len(a.Technologies) != 2 || a.Technologies[0] != "PMS" || a.Technologies[1] != "WiFi" {
		t.Errorf("Technologies: got %v", a.Technologies)
	}
	if len(res.TechLabels) != 1 || res.TechLabels[0] != "Core" {
		t.Errorf("TechLabels: got %v", res.TechLabels)
	}
}

func TestEnrich_TechCategoryDiscoveryOrder(t *testing.T) {
	records := []activitycsv.RawRecord{
		{Name: "a", TechLabel: "Web"},
		{Name: "b", TechLabel: "Core"},
		{Name: "c", TechLabel: "Web"},
		{Name: "d", TechLabel: "IoT"},
		{Name: "e", TechLabel: "Core"},
	}
	res := Enrich(records, sequentialIDs())

	wantIdx := []int{0, 1, 0, 2, 1}
	for i, a := range res.Activities {
		if a.TechCategory != wantIdx[i] {
			t.Errorf("activity %s: TechCategory got %d, want %d", a.Name, a.TechCategory, wantIdx[i])
		}
	}
	wantLabels := []string{"Web", "Core", "IoT"}
	for i, l := range wantLabels {
		if res.TechLabels[i] != l {
			t.Errorf("TechLabels[%d]: got %q, want %q", i, res.TechLabels[i], l)
		}
	}
}

func TestEnrich_IDsUniqueAndOrdered(t *testing.T) {
	records := make([]activitycsv.RawRecord, 50)
	for i := range records {
		records[i] = activitycsv.RawRecord{Name: fmt.Sprintf("r%d", i), Line: i + 1}
	}

	res := Enrich(records, nil)
	seen := make(map[string]bool)
	for i, a := range res.Activities {
		if seen[a.ID] {
			t.Fatalf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Line != i+1 {
			t.Errorf("order not preserved at %d: line %d", i, a.Line)
		}
	}
}

func TestEnrich_MissingComplexityIsHigh(t *testing.T) {
	res := Enrich([]activitycsv.RawRecord{{Name: "x"}}, sequentialIDs())
	if res.Activities[0].TextComplexity != models.ComplexityHigh {
		t.Errorf("TextComplexity: got %q, want %q", res.Activities[0].TextComplexity, models.ComplexityHigh)
	}
	if res.Activities[0].ID != "id-1" {
		t.Errorf("ID: got %q, want id-1", res.Activities[0].ID)
	}
}
