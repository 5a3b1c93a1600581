// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/categories"
	"github.com/dalemusser/activitymap/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end dependencies shared by the lifecycle hooks.
// The Mongo fields are nil unless the catalog is served from GridFS.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Categories *categories.Table
	Catalog    *catalog.Loader
	Refresh    *workers.CatalogRefresh // nil when periodic reload is off
}
