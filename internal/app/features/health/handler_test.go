package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/activitymap/internal/app/features/health"
	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type fixedStatus struct {
	st catalog.Status
}

func (f fixedStatus) Status() catalog.Status { return f.st }

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error { return p.err }

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Catalog  struct {
		State      string `json:"state"`
		Activities int    `json:"activities"`
		Dropped    int    `json:"dropped_lines"`
		Error      string `json:"error"`
	} `json:"catalog"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, resp
}

func TestServe_CatalogReady(t *testing.T) {
	l := testutil.LoadedCatalog(t)
	h := health.NewHandler(l, nil, zap.NewNop())

	rec, resp := serve(t, h)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Status != "ok" || resp.Catalog.State != "ready" {
		t.Errorf("got %+v", resp)
	}
	if resp.Catalog.Activities != testutil.SampleActivityCount || resp.Catalog.Dropped != 1 {
		t.Errorf("catalog counts: got %+v", resp.Catalog)
	}
	if resp.Database != "" {
		t.Errorf("database should be omitted without mongo, got %q", resp.Database)
	}
}

func TestServe_CatalogLoading(t *testing.T) {
	h := health.NewHandler(fixedStatus{catalog.Status{State: catalog.StateLoading}}, nil, zap.NewNop())

	rec, resp := serve(t, h)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Status != "starting" {
		t.Errorf("status: got %q, want starting", resp.Status)
	}
}

func TestServe_CatalogFailed(t *testing.T) {
	st := catalog.Status{State: catalog.StateFailed, Err: errors.New("catalog not found")}
	h := health.NewHandler(fixedStatus{st}, nil, zap.NewNop())

	rec, resp := serve(t, h)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if resp.Status != "error" || resp.Catalog.Error != "catalog not found" {
		t.Errorf("got %+v", resp)
	}
}

func TestServe_DatabasePing(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		database string
	}{
		{"connected", nil, http.StatusOK, "connected"},
		{"disconnected", errors.New("no reachable servers"), http.StatusServiceUnavailable, "disconnected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &health.Handler{
				Catalog: testutil.LoadedCatalog(t),
				Mongo:   fakePinger{err: tt.err},
				Log:     zap.NewNop(),
			}
			rec, resp := serve(t, h)
			if rec.Code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, rec.Code)
			}
			if resp.Database != tt.database {
				t.Errorf("database: got %q, want %q", resp.Database, tt.database)
			}
		})
	}
}

func TestRoutes_Live(t *testing.T) {
	st := catalog.Status{State: catalog.StateFailed, Err: errors.New("boom")}
	h := health.NewHandler(fixedStatus{st}, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	health.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("liveness must not depend on the catalog, got %d", rec.Code)
	}
	if !json.Valid(rec.Body.Bytes()) {
		t.Errorf("invalid JSON: %s", rec.Body.String())
	}
}
