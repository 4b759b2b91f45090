package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the service info, health and fallback routes
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	db        Pinger
	startTime time.Time
	endpoints map[string]string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, db Pinger) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		db:        db,
		startTime: time.Now(),
		endpoints: map[string]string{"health": "/health"},
	}
}

// RegisterEndpoints adds entries to the endpoint map served by GET /
func (h *SystemHandler) RegisterEndpoints(endpoints map[string]string) {
	for name, p := range endpoints {
		h.endpoints[name] = p
	}
}

// SystemInfoResponse is the body of GET /
type SystemInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	GoVersion string            `json:"go_version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Database  string  `json:"database"`
}

// GetSystemInfo handles GET /
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Endpoints: h.endpoints,
	})
}

// Health handles GET /health. Uptime is in seconds. A failed database ping
// turns the answer into a 503.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Seconds(),
		Database:  "up",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "DEGRADED"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, dto.Response{
			Success:   false,
			Data:      resp,
			Error:     &dto.ErrorInfo{Code: dto.ErrCodeServiceUnavailable, Message: "database unreachable"},
			RequestID: middleware.GetRequestID(c),
		})
		return
	}
	h.Success(c, resp)
}

// NoRoute answers unknown routes with a 404 naming the path and method
func (h *SystemHandler) NoRoute(c *gin.Context) {
	resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeRouteNotFound, "route not found", middleware.GetRequestID(c))
	resp.Error.Path = c.Request.URL.Path
	resp.Error.Method = c.Request.Method
	c.JSON(http.StatusNotFound, resp)
}

// NoMethod answers known paths requested with an unsupported method
func (h *SystemHandler) NoMethod(c *gin.Context) {
	resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeMethodNotAllowed, "method not allowed", middleware.GetRequestID(c))
	resp.Error.Path = c.Request.URL.Path
	resp.Error.Method = c.Request.Method
	c.JSON(http.StatusMethodNotAllowed, resp)
}
