package catalogsource

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultBucket is the GridFS bucket used when none is configured.
const DefaultBucket = "catalog"

// GridFS reads the catalog from a GridFS bucket, looking files up by name.
// When several revisions share a name the newest one is returned.
type GridFS struct {
	db       *mongo.Database
	bucket   string
	maxBytes int64
}

// NewGridFS returns a GridFS source over db.
func NewGridFS(db *mongo.Database, bucket string, maxBytes int64) *GridFS {
	if bucket == "" {
		bucket = DefaultBucket
	}
	if maxBytes <= 0 {
		maxBytes = activitycsv.MaxCatalogSize
	}
	return &GridFS{db: db, bucket: bucket, maxBytes: maxBytes}
}

func (s *GridFS) Kind() string { return KindGridFS }

// Fetch downloads the file named path.
func (s *GridFS) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(s.bucket))
	if err != nil {
		return nil, fmt.Errorf("open gridfs bucket %q: %w", s.bucket, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := b.SetReadDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set gridfs deadline: %w", err)
		}
	}

	stream, err := b.OpenDownloadStreamByName(path)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, s.bucket, path)
		}
		return nil, fmt.Errorf("open gridfs file %q: %w", path, err)
	}
	defer stream.Close()

	data, err := readStream(stream, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("read gridfs file %q: %w", path, err)
	}
	return data, nil
}

// fileStream is the part of *gridfs.DownloadStream readStream needs.
type fileStream interface {
	io.Reader
	GetFile() *gridfs.File
}

// readStream rejects files whose stored length exceeds limit before reading,
// then reads with the same cap in case the metadata is wrong.
func readStream(stream fileStream, limit int64) ([]byte, error) {
	if f := stream.GetFile(); f != nil && f.Length > limit {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, f.Length)
	}
	return readLimited(stream, limit)
}

var _ fileStream = (*gridfs.DownloadStream)(nil)
