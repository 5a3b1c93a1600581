// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (ACTIVITYMAP_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers ports, TLS, logging and the environment name; everything about the
// activity catalog lives here.
type AppConfig struct {
	// Catalog source
	CatalogSource          string        // "file", "http" or "gridfs"
	CatalogPath            string        // path or object name fetched from the source
	CatalogBaseURL         string        // base URL for the http source
	CatalogLoadTimeout     time.Duration // bound on one fetch+parse
	CatalogRefreshInterval time.Duration // >0 enables the periodic reload worker
	CatalogMaxRows         int           // parser row cap
	CatalogSkipHeader      bool          // drop the first data line unconditionally
	CatalogWaitOnStart     bool          // block startup until the first load finishes
	ReloadRateLimit        int           // manual reloads per client per minute (0 disables)

	// Grid layout
	CategoriesFile string   // optional YAML overriding the embedded category table
	GridVersions   []string // version rows shown in the grid

	// MongoDB (gridfs source only)
	MongoURI      string
	MongoDatabase string
	GridFSBucket  string

	// CSRF protection for the reload form
	CSRFKey []byte

	SiteName string
}
