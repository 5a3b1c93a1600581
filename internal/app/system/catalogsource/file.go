package catalogsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File reads the catalog from the local filesystem.
type File struct {
	MaxBytes int64
}

func (s *File) Kind() string { return KindFile }

// Fetch reads path from disk.
func (s *File) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	data, err := readLimited(f, s.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	return data, nil
}
