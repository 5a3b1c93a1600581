// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/catalogsource"
	"github.com/dalemusser/activitymap/internal/app/system/categories"
	"github.com/dalemusser/activitymap/internal/app/system/timeouts"
	"github.com/dalemusser/activitymap/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the catalog back end: the category table, the catalog
// source (connecting to MongoDB for GridFS), the loader and the optional
// refresh worker. Nothing is loaded yet; Startup kicks off the first load.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	table, err := categories.Load(appCfg.CategoriesFile)
	if err != nil {
		logger.Error("category table load failed", zap.String("file", appCfg.CategoriesFile), zap.Error(err))
		return DBDeps{}, err
	}
	deps.Categories = table

	if appCfg.CatalogSource == catalogsource.KindGridFS {
		client, err := connectMongo(ctx, appCfg.MongoURI, logger)
		if err != nil {
			return DBDeps{}, err
		}
		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
	}

	src, err := catalogsource.New(catalogsource.Config{
		Kind:     appCfg.CatalogSource,
		BaseURL:  appCfg.CatalogBaseURL,
		Database: deps.MongoDatabase,
		Bucket:   appCfg.GridFSBucket,
	})
	if err != nil {
		disconnect(deps.MongoClient, logger)
		return DBDeps{}, fmt.Errorf("catalog source: %w", err)
	}

	deps.Catalog = catalog.NewLoader(src, catalog.Options{
		Path:       appCfg.CatalogPath,
		Timeout:    appCfg.CatalogLoadTimeout,
		MaxRows:    appCfg.CatalogMaxRows,
		SkipHeader: appCfg.CatalogSkipHeader,
	}, logger)

	if appCfg.CatalogRefreshInterval > 0 {
		deps.Refresh = workers.NewCatalogRefresh(deps.Catalog, logger, appCfg.CatalogRefreshInterval)
	}

	logger.Info("catalog back end ready",
		zap.String("source", src.Kind()),
		zap.String("path", appCfg.CatalogPath),
		zap.Int("categories", table.Len()))

	return deps, nil
}

func connectMongo(ctx context.Context, uri string, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Startup())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeouts.Ping())
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		disconnect(client, logger)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to MongoDB")
	return client, nil
}

func disconnect(client *mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Ping())
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("MongoDB disconnect failed", zap.Error(err))
	}
}

// EnsureSchema is a no-op: the catalog lives in a file or GridFS bucket and
// the app writes nothing to the database.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
