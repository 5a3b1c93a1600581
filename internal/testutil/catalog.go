package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"go.uber.org/zap"
)

// StaticSource is a catalog source that always returns Data, or Err if set.
type StaticSource struct {
	Data string
	Err  error
}

// Kind implements catalogsource.Source.
func (s StaticSource) Kind() string { return "static" }

// Fetch implements catalogsource.Source.
func (s StaticSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return []byte(s.Data), nil
}

// LoadedCatalog returns a loader that has published SampleCatalog with
// deterministic IDs. The loader is closed when the test ends.
func LoadedCatalog(t testing.TB) *catalog.Loader {
	t.Helper()
	return LoaderFor(t, StaticSource{Data: SampleCatalog})
}

// LoaderFor returns a loader over src after one synchronous load attempt.
// Load errors are left in the loader state for the test to inspect.
func LoaderFor(t testing.TB, src StaticSource) *catalog.Loader {
	t.Helper()
	l := catalog.NewLoader(src, catalog.Options{
		Path:    "activities.csv",
		Timeout: 5 * time.Second,
		NewID:   SequentialIDs("act"),
	}, zap.NewNop())
	t.Cleanup(l.Close)

	ctx, cancel := TestContext()
	defer cancel()
	_, _ = l.Reload(ctx)
	return l
}
