package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/activitymap/internal/app/store/catalog"
	"github.com/dalemusser/activitymap/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// StatusSource reports the catalog load state.
type StatusSource interface {
	Status() catalog.Status
}

// Pinger checks backend connectivity. *mongo.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog StatusSource
	Mongo   Pinger // nil when no database is configured
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(cat StatusSource, client *mongo.Client, logger *zap.Logger) *Handler {
	h := &Handler{Catalog: cat, Log: logger}
	if client != nil {
		h.Mongo = client
	}
	return h
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string        `json:"status"`
	Catalog  catalogStatus `json:"catalog"`
	Database string        `json:"database,omitempty"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type catalogStatus struct {
	State      string     `json:"state"`
	Activities int        `json:"activities"`
	Dropped    int        `json:"dropped_lines"`
	Reloading  bool       `json:"reloading,omitempty"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// Ready catalog: 200 and
//
//	{ "status":"ok", "catalog":{"state":"ready","activities":10,...}, "database":"connected" }
//
// While loading: 200 with status "starting". Failed load or DB failure: 503
// with status "error".
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	st := h.Catalog.Status()
	resp := healthResponse{
		Status:  "ok",
		Catalog: catalogStatus{State: string(st.State), Reloading: st.Reloading},
	}
	code := http.StatusOK

	switch st.State {
	case catalog.StateReady:
		resp.Catalog.Activities = st.Catalog.Len()
		resp.Catalog.Dropped = st.Catalog.Dropped()
		loaded := st.Catalog.LoadedAt
		resp.Catalog.LoadedAt = &loaded
	case catalog.StateFailed:
		code = http.StatusServiceUnavailable
		resp.Status = "error"
		resp.Message = "Catalog unavailable"
		if st.Err != nil {
			resp.Catalog.Error = st.Err.Error()
		}
	default:
		resp.Status = "starting"
	}

	if h.Mongo != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		resp.Database = "connected"
		if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			code = http.StatusServiceUnavailable
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
		}
	}

	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// ServeLive handles GET /health/live. It only proves the process serves
// HTTP, so a slow catalog source never gets the pod restarted.
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
}
