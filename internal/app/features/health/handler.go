package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/keerthivardhanm/cms-V2/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ViewCounter reports how many dashboard views are open.
type ViewCounter interface {
	Len() int
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Views  ViewCounter
	Log    *zap.Logger
}

// NewHandler constructs a health Handler. views may be nil.
func NewHandler(client *mongo.Client, views ViewCounter, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Views:  views,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	OpenViews *int   `json:"open_views,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "open_views":3 }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}
	if h.Views != nil {
		n := h.Views.Len()
		resp.OpenViews = &n
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
