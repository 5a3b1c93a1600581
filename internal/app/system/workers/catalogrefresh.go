// internal/app/system/workers/catalogrefresh.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/activitymap/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Reloader is the part of the catalog loader the refresh worker drives.
type Reloader interface {
	ReloadAsync()
}

// CatalogRefresh is a background worker that periodically reloads the
// catalog so edits to the published file show up without a restart.
type CatalogRefresh struct {
	loader   Reloader
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewCatalogRefresh creates a new catalog refresh worker.
//
// Parameters:
//   - loader: the catalog loader
//   - logger: zap logger for logging
//   - interval: how often to reload (e.g., 5 minutes)
func NewCatalogRefresh(loader Reloader, logger *zap.Logger, interval time.Duration) *CatalogRefresh {
	return &CatalogRefresh{
		loader:   loader,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop.
func (w *CatalogRefresh) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("catalog refresh worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *CatalogRefresh) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("catalog refresh worker stopped")
}

func (w *CatalogRefresh) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *CatalogRefresh) refresh() {
	w.log.Debug("catalog refresh tick")
	w.loader.ReloadAsync()
}

// WaitReady blocks until ready returns true, ctx is done, or the startup
// timeout elapses. Used at startup when the first load should finish before
// the server accepts traffic.
func WaitReady(ctx context.Context, ready func() bool) bool {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Startup())
	defer cancel()

	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		if ready() {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}
