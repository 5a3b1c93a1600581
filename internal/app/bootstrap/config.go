// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/catalogsource"
	"github.com/dalemusser/activitymap/internal/app/system/grid"
	"github.com/dalemusser/activitymap/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// csrfKeyLength is the key size gorilla/csrf expects.
const csrfKeyLength = 32

// appConfigKeys defines the configuration keys for the activity map.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: catalog_source, catalog_path, etc.
//   - Environment variables: ACTIVITYMAP_CATALOG_SOURCE, ACTIVITYMAP_CATALOG_PATH, etc.
//   - Command-line flags: --catalog_source, --catalog_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "catalog_source", Default: catalogsource.KindFile, Desc: "Catalog source: 'file', 'http' or 'gridfs'"},
	{Name: "catalog_path", Default: "data/activities.csv", Desc: "Catalog path (file), URL path (http) or file name (gridfs)"},
	{Name: "catalog_base_url", Default: "", Desc: "Base URL for the http catalog source"},
	{Name: "catalog_load_timeout", Default: "15s", Desc: "Timeout for one catalog load (e.g., 15s, 1m)"},
	{Name: "catalog_refresh_interval", Default: "0s", Desc: "Periodic catalog reload interval (0 disables)"},
	{Name: "catalog_max_rows", Default: activitycsv.MaxRows, Desc: "Maximum catalog rows accepted by the parser"},
	{Name: "catalog_skip_header", Default: false, Desc: "Always skip the first non-comment catalog line"},
	{Name: "catalog_wait_on_start", Default: false, Desc: "Wait for the first catalog load before serving"},
	{Name: "reload_rate_limit", Default: 6, Desc: "Manual catalog reloads allowed per client per minute (0 disables)"},

	{Name: "categories_file", Default: "", Desc: "YAML file overriding the embedded category table"},
	{Name: "grid_versions", Default: strings.Join(grid.DefaultVersions, ","), Desc: "Comma-separated version rows shown in the grid"},

	// MongoDB / GridFS (only used by the gridfs source)
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (gridfs source only)"},
	{Name: "mongo_database", Default: "activitymap", Desc: "MongoDB database name"},
	{Name: "gridfs_bucket", Default: catalogsource.DefaultBucket, Desc: "GridFS bucket holding the catalog"},

	{Name: "csrf_key", Default: "", Desc: "CSRF key, at least 32 bytes (random per process when blank)"},
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in page titles"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, ACTIVITYMAP_* for app) and
// command-line flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ACTIVITYMAP", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		CatalogSource:          strings.ToLower(strings.TrimSpace(appValues.String("catalog_source"))),
		CatalogPath:            appValues.String("catalog_path"),
		CatalogBaseURL:         appValues.String("catalog_base_url"),
		CatalogLoadTimeout:     appValues.Duration("catalog_load_timeout", 15*time.Second),
		CatalogRefreshInterval: appValues.Duration("catalog_refresh_interval", 0),
		CatalogMaxRows:         appValues.Int("catalog_max_rows"),
		CatalogSkipHeader:      appValues.Bool("catalog_skip_header"),
		CatalogWaitOnStart:     appValues.Bool("catalog_wait_on_start"),
		ReloadRateLimit:        appValues.Int("reload_rate_limit"),

		CategoriesFile: appValues.String("categories_file"),
		GridVersions:   parseVersions(appValues.String("grid_versions")),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),
		GridFSBucket:  appValues.String("gridfs_bucket"),

		CSRFKey:  []byte(appValues.String("csrf_key")),
		SiteName: appValues.String("site_name"),
	}

	// A blank key keeps dev setups working; tokens won't survive a restart.
	if len(appCfg.CSRFKey) == 0 {
		appCfg.CSRFKey = securecookie.GenerateRandomKey(csrfKeyLength)
		if appCfg.CSRFKey == nil {
			return nil, AppConfig{}, errors.New("generate csrf key: random source unavailable")
		}
		logger.Warn("csrf_key not set, using a random per-process key")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !catalogsource.Valid(appCfg.CatalogSource) {
		return fmt.Errorf("invalid catalog_source %q (want one of %s)",
			appCfg.CatalogSource, strings.Join(catalogsource.Kinds(), ", "))
	}
	if strings.TrimSpace(appCfg.CatalogPath) == "" {
		return errors.New("catalog_path is required")
	}

	switch appCfg.CatalogSource {
	case catalogsource.KindHTTP:
		if strings.TrimSpace(appCfg.CatalogBaseURL) == "" {
			return errors.New("catalog_source http requires catalog_base_url")
		}
	case catalogsource.KindGridFS:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return errors.New("catalog_source gridfs requires mongo_database")
		}
	}

	if appCfg.CatalogLoadTimeout < 0 {
		return fmt.Errorf("catalog_load_timeout must not be negative, got %s", appCfg.CatalogLoadTimeout)
	}
	if appCfg.CatalogRefreshInterval < 0 {
		return fmt.Errorf("catalog_refresh_interval must not be negative, got %s", appCfg.CatalogRefreshInterval)
	}
	if appCfg.CatalogMaxRows < 0 {
		return fmt.Errorf("catalog_max_rows must not be negative, got %d", appCfg.CatalogMaxRows)
	}
	if appCfg.ReloadRateLimit < 0 {
		return fmt.Errorf("reload_rate_limit must not be negative, got %d", appCfg.ReloadRateLimit)
	}
	if len(appCfg.GridVersions) == 0 {
		return errors.New("grid_versions must list at least one version")
	}
	if len(appCfg.CSRFKey) < csrfKeyLength {
		return fmt.Errorf("csrf_key must be at least %d bytes", csrfKeyLength)
	}

	return nil
}

// parseVersions splits a comma-separated version list, dropping blanks and
// duplicates while keeping order.
func parseVersions(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
