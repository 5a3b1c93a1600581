// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// CategoriesFile is the embedded default coarse category table.
const CategoriesFile = "categories.yaml"

// Embed the shared template files and static configuration.
//
//go:embed templates/*.gohtml categories.yaml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the layout partials used by every feature.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
