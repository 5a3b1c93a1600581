// internal/app/features/activitymap/view.go
package activitymap

import (
	"strconv"
	"strings"

	"github.com/dalemusser/activitymap/internal/app/system/activityfilter"
	"github.com/dalemusser/activitymap/internal/app/system/grid"
	"github.com/dalemusser/activitymap/internal/app/system/htmlsanitize"
	"github.com/dalemusser/activitymap/internal/app/system/palette"
	"github.com/dalemusser/activitymap/internal/app/system/stats"
	"github.com/dalemusser/activitymap/internal/domain/models"
)

// cardTechLimit is how many technologies a card lists before "+N".
const cardTechLimit = 2

var complexityLabels = []string{"Todas las complejidades", models.ComplexityLow, models.ComplexityMedium, models.ComplexityHigh}

func buildFilters(c activityfilter.Criteria, techLabels, categoryNames []string) FiltersVM {
	f := FiltersVM{Search: c.Search, Active: !c.IsZero()}

	for i, label := range complexityLabels {
		f.ComplexityOptions = append(f.ComplexityOptions, Option{
			Value:    strconv.Itoa(i),
			Label:    label,
			Selected: c.Complexity == i,
		})
	}

	f.TechOptions = append(f.TechOptions, Option{Value: "0", Label: "Todas las tecnologías", Selected: c.TechCategory == 0})
	for i, label := range techLabels {
		if label == "" {
			label = "(sin categoría)"
		}
		f.TechOptions = append(f.TechOptions, Option{
			Value:    strconv.Itoa(i + 1),
			Label:    label,
			Selected: c.TechCategory == i+1,
		})
	}

	f.CategoryOptions = append(f.CategoryOptions, Option{Value: "", Label: "Todas las categorías", Selected: c.Category == ""})
	for _, name := range categoryNames {
		f.CategoryOptions = append(f.CategoryOptions, Option{Value: name, Label: name, Selected: c.Category == name})
	}

	return f
}

func buildLegend(techLabels []string) []LegendItem {
	out := make([]LegendItem, 0, len(techLabels))
	for i, label := range techLabels {
		if label == "" {
			continue
		}
		out = append(out, LegendItem{Label: label, Class: palette.Tech(i)})
	}
	return out
}

func buildGrid(filtered []models.Activity, g *grid.Grid) GridVM {
	s := stats.Aggregate(filtered)
	vm := GridVM{
		Stats:      s,
		MaxVersion: s.MaxVersionLabel(),
		Categories: g.Categories(),
		Placed:     g.Total(),
	}

	for _, row := range g.Rows() {
		if !row.HasActivities() {
			continue
		}
		rv := RowVM{Version: row.Version}
		for _, cell := range row.Cells {
			cv := CellVM{Category: cell.Category, Cards: make([]CardVM, 0, len(cell.Activities))}
			for _, a := range cell.Activities {
				cv.Cards = append(cv.Cards, buildCard(a))
			}
			rv.Cells = append(rv.Cells, cv)
		}
		vm.Rows = append(vm.Rows, rv)
	}
	vm.Empty = len(vm.Rows) == 0

	return vm
}

func buildCard(a models.Activity) CardVM {
	card := CardVM{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Category:        a.Category,
		Class:           a.BackgroundColor,
		ComplexityLabel: a.TextComplexity,
		ComplexityClass: palette.ComplexityBadge(a.Complexity),
	}
	if a.SpanMultipleVersions {
		card.Class += " row-span-2"
	}

	techs := a.Technologies
	if len(techs) > cardTechLimit {
		card.MoreTechs = len(techs) - cardTechLimit
		techs = techs[:cardTechLimit]
	}
	card.Technologies = techs

	return card
}

func buildDetail(a models.Activity) DetailVM {
	return DetailVM{
		ID:              a.ID,
		Name:            a.Name,
		Version:         a.Version,
		Category:        a.Category,
		MainCategory:    a.MainCategory,
		HeaderClass:     palette.MainCategory(a.MainCategory),
		ComplexityLabel: a.TextComplexity,
		ComplexityClass: palette.ComplexityPill(a.Complexity),
		Description:     a.Description,
		Frequency:       a.Frequency,
		Detail:          htmlsanitize.PrepareForDisplay(a.Detail),
		Systems:         splitSystems(a.System),
		Technologies:    a.Technologies,
		TechCategory:    a.TechCategoryLabel,
		TechClass:       a.BackgroundColor,
		SpansVersions:   a.SpanMultipleVersions,
		Line:            a.Line,
	}
}

// splitSystems splits the comma-separated system field, dropping blanks.
func splitSystems(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
