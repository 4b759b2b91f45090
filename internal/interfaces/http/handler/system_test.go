package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/pizzeria/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler("pizza-order-service", "1.0.0", stubPinger{})
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("pizza-order-service", "1.0.0", stubPinger{})
	h.RegisterEndpoints(map[string]string{"orders": "/api/v1/orders"})
	c, w := newTestContext(http.MethodGet, "/", "")

	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "pizza-order-service", data["name"])
	assert.Equal(t, "1.0.0", data["version"])
	assert.NotEmpty(t, data["go_version"])

	endpoints := data["endpoints"].(map[string]interface{})
	assert.Equal(t, "/api/v1/orders", endpoints["orders"])
	assert.Equal(t, "/health", endpoints["health"])
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		h := NewSystemHandler("svc", "1.0.0", stubPinger{})
		c, w := newTestContext(http.MethodGet, "/health", "")

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "OK", data["status"])
		assert.Equal(t, "up", data["database"])
		assert.GreaterOrEqual(t, data["uptime"].(float64), 0.0)

		_, err := time.Parse(time.RFC3339, data["timestamp"].(string))
		assert.NoError(t, err)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewSystemHandler("svc", "1.0.0", stubPinger{err: errors.New("connection refused")})
		c, w := newTestContext(http.MethodGet, "/health", "")

		h.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeServiceUnavailable, resp.Error.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "down", data["database"])
	})
}

func TestSystemHandler_NoRoute(t *testing.T) {
	h := NewSystemHandler("svc", "1.0.0", stubPinger{})
	c, w := newTestContext(http.MethodDelete, "/api/v1/unknown", "")

	h.NoRoute(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeRouteNotFound, resp.Error.Code)
	assert.Equal(t, "/api/v1/unknown", resp.Error.Path)
	assert.Equal(t, http.MethodDelete, resp.Error.Method)
}
