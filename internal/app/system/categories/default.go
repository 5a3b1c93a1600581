package categories

import (
	"fmt"

	appresources "github.com/dalemusser/activitymap/internal/app/resources"
)

// Default returns the table embedded in the application resources.
func Default() (*Table, error) {
	data, err := appresources.FS.ReadFile(appresources.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded category table: %w", err)
	}
	return Parse(data)
}

// Load returns the table from path when set, otherwise the embedded default.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
