package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dalemusser/activitymap/internal/app/system/activitycsv"
	"github.com/dalemusser/activitymap/internal/app/system/catalogsource"
	"github.com/dalemusser/activitymap/internal/app/system/derive"
	"github.com/dalemusser/activitymap/internal/app/system/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// State is the load state of the catalog.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

var (
	// ErrNotLoaded is returned while the first load is still running.
	ErrNotLoaded = errors.New("catalog not loaded yet")
	// ErrLoadFailed wraps the cause of the last failed load.
	ErrLoadFailed = errors.New("catalog load failed")
	// ErrClosed is returned once the loader has been shut down.
	ErrClosed = errors.New("catalog loader closed")
)

// DefaultTimeout bounds a single load when Options.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// Status is a point-in-time view of the loader.
type Status struct {
	State State
	// Catalog is set only in StateReady.
	Catalog *Catalog
	// Err is set only in StateFailed.
	Err error
	// Reloading is true while a load runs on top of a published state.
	Reloading  bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// Options configures a Loader.
type Options struct {
	Path       string
	Timeout    time.Duration
	MaxRows    int
	SkipHeader bool
	// NewID overrides activity ID generation (tests).
	NewID derive.IDFunc
}

// Loader fetches, parses and publishes the catalog.
type Loader struct {
	src  catalogsource.Source
	opts Options
	log  *zap.Logger

	status    atomic.Pointer[Status]
	reloading atomic.Bool
	group     singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewLoader creates a loader in StateLoading. Nothing is fetched until Start
// or Reload is called.
func NewLoader(src catalogsource.Source, opts Options, logger *zap.Logger) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		src:    src,
		opts:   opts,
		log:    logger,
		ctx:    ctx,
		cancel: cancel,
	}
	l.status.Store(&Status{State: StateLoading, StartedAt: time.Now()})
	return l
}

// Start kicks off the initial load in the background.
func (l *Loader) Start() {
	l.ReloadAsync()
}

// ReloadAsync starts a load in the background. It joins a load already in
// flight.
func (l *Loader) ReloadAsync() {
	if !l.begin() {
		return
	}
	go func() {
		defer l.wg.Done()
		if _, err := l.load(); err != nil && !errors.Is(err, ErrClosed) {
			l.log.Debug("background catalog load finished with error", zap.Error(err))
		}
	}()
}

// Reload loads the catalog and waits for the result. Concurrent callers share
// one fetch. Cancelling ctx stops the wait, not the shared load.
func (l *Loader) Reload(ctx context.Context) (*Catalog, error) {
	if !l.begin() {
		return nil, ErrClosed
	}

	ch := make(chan singleflight.Result, 1)
	go func() {
		defer l.wg.Done()
		c, err := l.load()
		ch <- singleflight.Result{Val: c, Err: err}
	}()

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Catalog), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Status returns the current state.
func (l *Loader) Status() Status {
	st := *l.status.Load()
	st.Reloading = l.reloading.Load() && st.State != StateLoading
	return st
}

// Current returns the published catalog, ErrNotLoaded while loading, or an
// error wrapping ErrLoadFailed and its cause after a failed load.
func (l *Loader) Current() (*Catalog, error) {
	st := l.status.Load()
	switch st.State {
	case StateReady:
		return st.Catalog, nil
	case StateFailed:
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, st.Err)
	default:
		return nil, ErrNotLoaded
	}
}

// Close cancels any load in flight and waits for background work to stop.
// A load cancelled this way never publishes its result.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}

func (l *Loader) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.wg.Add(1)
	return true
}

// load runs one deduplicated fetch+parse+publish cycle.
func (l *Loader) load() (*Catalog, error) {
	v, err, _ := l.group.Do("catalog", func() (any, error) {
		l.reloading.Store(true)
		defer l.reloading.Store(false)
		return l.fetchAndPublish()
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

func (l *Loader) fetchAndPublish() (*Catalog, error) {
	start := time.Now()
	kind := l.src.Kind()

	ctx, cancel := context.WithTimeout(l.ctx, l.opts.Timeout)
	defer cancel()

	cat, err := l.build(ctx)
	took := time.Since(start)

	if l.ctx.Err() != nil {
		return nil, l.canceled(kind, took)
	}

	if err != nil {
		if !l.publish(&Status{State: StateFailed, Err: err, StartedAt: start, FinishedAt: time.Now()}) {
			return nil, l.canceled(kind, took)
		}
		metrics.RecordLoad(kind, metrics.OutcomeFailure, took)
		metrics.RecordCleared()
		l.log.Error("catalog load failed",
			zap.String("source", kind),
			zap.String("path", l.opts.Path),
			zap.Duration("took", took),
			zap.Error(err))
		return nil, err
	}

	cat.Source = kind
	cat.Path = l.opts.Path
	cat.LoadedAt = time.Now()

	if !l.publish(&Status{State: StateReady, Catalog: cat, StartedAt: start, FinishedAt: cat.LoadedAt}) {
		return nil, l.canceled(kind, took)
	}
	metrics.RecordLoad(kind, metrics.OutcomeSuccess, took)
	metrics.RecordPublished(cat.Len(), cat.Dropped(), cat.LoadedAt)

	fields := []zap.Field{
		zap.String("source", kind),
		zap.String("path", l.opts.Path),
		zap.Int("activities", cat.Len()),
		zap.Int("tech_categories", len(cat.techLabels)),
		zap.Int("dropped_lines", cat.Dropped()),
		zap.Duration("took", took),
	}
	if cat.Dropped() > 0 {
		l.log.Warn("catalog loaded with dropped lines", fields...)
	} else {
		l.log.Info("catalog loaded", fields...)
	}

	return cat, nil
}

// publish stores st unless Close has started. Holding mu orders it against
// Close, so nothing is published once Close has set closed.
func (l *Loader) publish(st *Status) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.status.Store(st)
	return true
}

// canceled records a load whose result was dropped because of teardown.
func (l *Loader) canceled(kind string, took time.Duration) error {
	metrics.RecordLoad(kind, metrics.OutcomeCanceled, took)
	l.log.Info("catalog load canceled", zap.String("source", kind), zap.String("path", l.opts.Path))
	return ErrClosed
}

func (l *Loader) build(ctx context.Context) (*Catalog, error) {
	data, err := l.src.Fetch(ctx, l.opts.Path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", l.opts.Path, err)
	}

	parsed, err := activitycsv.Parse(bytes.NewReader(data), activitycsv.ParseOptions{
		SkipHeader: l.opts.SkipHeader,
		MaxRows:    l.opts.MaxRows,
	})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.opts.Path, err)
	}

	res := derive.Enrich(parsed.Records, l.opts.NewID)
	return newCatalog(res.Activities, res.TechLabels, parsed.Errors), nil
}
