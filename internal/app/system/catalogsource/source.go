// Package catalogsource fetches the raw catalog file from where it is
// published: the local filesystem, a static HTTP server or a MongoDB GridFS
// bucket.
package catalogsource

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"go.mongodb.org/mongo-driver/mongo"
)

// Source kinds accepted by New.
const (
	KindFile   = "file"
	KindHTTP   = "http"
	KindGridFS = "gridfs"
)

// ErrNotFound is returned when the catalog does not exist at the source.
var ErrNotFound = errors.New("catalog not found")

// ErrTooLarge is returned when the catalog exceeds the configured size cap.
var ErrTooLarge = errors.New("catalog too large")

// Source fetches the catalog bytes for a path.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
	// Kind names the source for logs and metrics.
	Kind() string
}

// Config selects and configures a Source.
type Config struct {
	Kind     string
	BaseURL  string          // http
	Database *mongo.Database // gridfs
	Bucket   string          // gridfs
	MaxBytes int64           // 0 means activitycsv.MaxCatalogSize
}

// Kinds lists the valid source kinds.
func Kinds() []string {
	return []string{KindFile, KindHTTP, KindGridFS}
}

// Valid reports whether kind names a known source.
func Valid(kind string) bool {
	for _, k := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// New builds the Source described by cfg.
func New(cfg Config) (Source, error) {
	limit := cfg.MaxBytes
	if limit <= 0 {
		limit = activitycsv.MaxCatalogSize
	}

	switch cfg.Kind {
	case KindFile, "":
		return &File{MaxBytes: limit}, nil
	case KindHTTP:
		if cfg.BaseURL == "" {
			return nil, errors.New("http catalog source requires a base URL")
		}
		return NewHTTP(cfg.BaseURL, nil, limit), nil
	case KindGridFS:
		if cfg.Database == nil {
			return nil, errors.New("gridfs catalog source requires a database")
		}
		return NewGridFS(cfg.Database, cfg.Bucket, limit), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Kind)
	}
}

// readLimited reads r up to max bytes, failing with ErrTooLarge beyond that.
func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = activitycsv.MaxCatalogSize
	}
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, max)
	}
	return data, nil
}
