// Package stats computes the summary figures shown above the grid.
package stats

import (
	"strconv"

	"github.com/dalemusser/activitymap/internal/domain/models"
)

// Summary holds the aggregate figures for a filtered set of activities.
type Summary struct {
	Total              int `json:"total"`
	HighComplexity     int `json:"high_complexity"`
	UniqueTechnologies int `json:"unique_technologies"`
	// MaxVersion is meaningful only when HasMaxVersion is true.
	MaxVersion    int  `json:"max_version"`
	HasMaxVersion bool `json:"has_max_version"`
}

// Aggregate summarizes filtered. Technologies are counted by exact string.
// Versions that are not integers are ignored for MaxVersion.
func Aggregate(filtered []models.Activity) Summary {
	s := Summary{Total: len(filtered)}

	techs := make(map[string]struct{})
	for _, a := range filtered {
		if a.IsHighComplexity() {
			s.HighComplexity++
		}
		for _, t := range a.Technologies {
			techs[t] = struct{}{}
		}
		if v, err := strconv.Atoi(a.Version); err == nil {
			if !s.HasMaxVersion || v > s.MaxVersion {
				s.MaxVersion = v
				s.HasMaxVersion = true
			}
		}
	}
	s.UniqueTechnologies = len(techs)

	return s
}

// MaxVersionLabel returns MaxVersion as text, or "—" when there is none.
func (s Summary) MaxVersionLabel() string {
	if !s.HasMaxVersion {
		return "—"
	}
	return strconv.Itoa(s.MaxVersion)
}
