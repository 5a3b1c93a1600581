package stats_test

import (
	"testing"

	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/activitymap/internal/app/system/stats"
	"github.com/dalemusser/activitymap/internal/domain/models"
	"github.com/dalemusser/activitymap/internal/testutil"
)

func TestAggregate_Empty(t *testing.T) {
	s := stats.Aggregate(nil)
	if s.Total != 0 || s.HighComplexity != 0 || s.UniqueTechnologies != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
	if s.HasMaxVersion {
		t.Error("empty set should have no max version")
	}
	if s.MaxVersionLabel() != "—" {
		t.Errorf("MaxVersionLabel: got %q, want %q", s.MaxVersionLabel(), "—")
	}
}

func TestAggregate_SampleCatalog(t *testing.T) {
	s := stats.Aggregate(testutil.SampleActivities(t))

	if s.Total != testutil.SampleActivityCount {
		t.Errorf("Total: got %d, want %d", s.Total, testutil.SampleActivityCount)
	}
	if s.HighComplexity != 4 {
		t.Errorf("HighComplexity: got %d, want 4", s.HighComplexity)
	}
	if s.UniqueTechnologies != 13 {
		t.Errorf("UniqueTechnologies: got %d, want 13", s.UniqueTechnologies)
	}
	if !s.HasMaxVersion || s.MaxVersion != 5 {
		t.Errorf("MaxVersion: got %d (has=%v), want 5", s.MaxVersion, s.HasMaxVersion)
	}
	if s.MaxVersionLabel() != "5" {
		t.Errorf("MaxVersionLabel: got %q", s.MaxVersionLabel())
	}
}

func TestAggregate_Bounds(t *testing.T) {
	all := testutil.SampleActivities(t)
	for _, c := range []activityfilter.Criteria{
		{},
		{Complexity: 3},
		{TechCategory: 3},
		{Search: "reserva"},
	} {
		filtered := activityfilter.Filter(all, c, testutil.SampleCategories(t))
		s := stats.Aggregate(filtered)

		sumTechs := 0
		for _, a := range filtered {
			sumTechs += len(a.Technologies)
		}
		if s.HighComplexity > s.Total {
			t.Errorf("%+v: high complexity %d > total %d", c, s.HighComplexity, s.Total)
		}
		if s.UniqueTechnologies > sumTechs {
			t.Errorf("%+v: unique technologies %d > %d", c, s.UniqueTechnologies, sumTechs)
		}
		if s.Total != len(filtered) {
			t.Errorf("%+v: total %d != %d", c, s.Total, len(filtered))
		}
	}
}

func TestAggregate_ExactTechnologyMatch(t *testing.T) {
	acts := []models.Activity{
		{Version: "1", Technologies: []string{"PMS", "pms"}},
		{Version: "1", Technologies: []string{"PMS"}},
	}
	if got := stats.Aggregate(acts).UniqueTechnologies; got != 2 {
		t.Errorf("UniqueTechnologies: got %d, want 2", got)
	}
}

func TestAggregate_NonNumericVersion(t *testing.T) {
	acts := []models.Activity{
		{Version: "beta"},
		{Version: "3"},
		{Version: "2"},
	}
	s := stats.Aggregate(acts)
	if !s.HasMaxVersion || s.MaxVersion != 3 {
		t.Errorf("MaxVersion: got %d (has=%v), want 3", s.MaxVersion, s.HasMaxVersion)
	}

	s = stats.Aggregate([]models.Activity{{Version: "beta"}})
	if s.HasMaxVersion {
		t.Error("no numeric versions should leave MaxVersion unset")
	}
}
