// internal/app/features/activitymap/handler.go
package activitymap

import (
	"context"

	uierrors "github.com/dalemusser/activitymap/internal/app/features/errors"
	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/categories"
	"github.com/dalemusser/activitymap/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// CatalogStore is the part of the catalog loader the dashboard reads from.
type CatalogStore interface {
	Current() (*catalog.Catalog, error)
	Status() catalog.Status
	Reload(ctx context.Context) (*catalog.Catalog, error)
}

// Handler is the shared dependency container for the activity map feature.
type Handler struct {
	Catalog    CatalogStore
	Categories *categories.Table
	Versions   []string
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger

	// ReloadLimit throttles manual reloads per client; nil disables it.
	ReloadLimit *ratelimit.Limiter
}

// NewHandler constructs a new Handler. A nil versions uses the default grid
// rows.
func NewHandler(store CatalogStore, table *categories.Table, versions []string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:    store,
		Categories: table,
		Versions:   versions,
		Log:        logger,
		ErrLog:     errLog,
	}
}
