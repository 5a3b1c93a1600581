package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type countingReloader struct {
	n atomic.Int32
}

func (r *countingReloader) ReloadAsync() { r.n.Add(1) }

func TestCatalogRefresh_Ticks(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := &countingReloader{}
	w := NewCatalogRefresh(r, zap.NewNop(), 10*time.Millisecond)
	w.Start()

	deadline := time.Now().Add(2 * time.Second)
	for r.n.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()

	if r.n.Load() < 2 {
		t.Errorf("expected at least 2 reloads, got %d", r.n.Load())
	}
}

func TestCatalogRefresh_StopBeforeTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := &countingReloader{}
	w := NewCatalogRefresh(r, zap.NewNop(), time.Hour)
	w.Start()
	w.Stop()

	if r.n.Load() != 0 {
		t.Errorf("expected no reloads, got %d", r.n.Load())
	}
}

func TestWaitReady(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ready atomic.Bool
	go func() {
		time.Sleep(30 * time.Millisecond)
		ready.Store(true)
	}()
	if !WaitReady(context.Background(), ready.Load) {
		t.Error("expected ready")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if WaitReady(ctx, func() bool { return false }) {
		t.Error("expected timeout")
	}
}
