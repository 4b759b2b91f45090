package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectedHTTP int
	}{
		{"validation", shared.NewValidationError("quantity must be positive"), dto.ErrCodeValidation, http.StatusBadRequest},
		{"not found", shared.NewNotFoundError("order"), dto.ErrCodeNotFound, http.StatusNotFound},
		{"conflict", shared.NewConflictError("email already exists"), dto.ErrCodeConflict, http.StatusConflict},
		{"store", shared.NewStoreError("failed to create order", errors.New("disk full")), dto.ErrCodeStore, http.StatusInternalServerError},
		{"wrapped domain error", errors.Join(errors.New("context"), shared.NewNotFoundError("pizza")), dto.ErrCodeNotFound, http.StatusNotFound},
		{"plain error", errors.New("boom"), dto.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext(http.MethodGet, "/test", "")
			c.Set("request_id", "req-1")

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedHTTP, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
			assert.Equal(t, "req-1", resp.RequestID)
			// test mode never leaks the cause
			assert.Empty(t, resp.Error.Detail)
		})
	}
}

func TestBaseHandler_HandleError_KeepsDomainMessage(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/test", "")

	h.HandleError(c, shared.NewNotFoundError("customer"))

	resp := decodeResponse(t, w)
	assert.Equal(t, "customer not found", resp.Error.Message)
}

func TestBaseHandler_HandleError_DebugDetail(t *testing.T) {
	gin.SetMode(gin.DebugMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/test", "")

	h.HandleError(c, shared.NewStoreError("failed to list orders", errors.New("connection refused")))

	resp := decodeResponse(t, w)
	assert.Equal(t, "failed to list orders", resp.Error.Message)
	assert.Equal(t, "connection refused", resp.Error.Detail)
}

func TestBaseHandler_HandleError_LogsWithRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/api/v1/orders", "")
	ctx, _ := logger.WithRequestID(c.Request.Context(), zap.New(core), "req-7")
	c.Request = c.Request.WithContext(ctx)

	h.HandleError(c, shared.NewStoreError("failed to list orders", errors.New("connection refused")))
	h.HandleError(c, shared.NewNotFoundError("order"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := recorded.All()
	require.Len(t, entries, 1, "only store failures are logged")
	assert.Equal(t, "Store failure", entries[0].Message)
	assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])
}

func TestBaseHandler_ParseID(t *testing.T) {
	tests := []struct {
		raw    string
		ok     bool
		wantID int64
	}{
		{"42", true, 42},
		{"0", false, 0},
		{"-3", false, 0},
		{"abc", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext(http.MethodGet, "/orders/"+tt.raw, "")
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := h.ParseID(c)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantID, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
			}
		})
	}
}

func TestBaseHandler_BindJSON(t *testing.T) {
	type request struct {
		Name     string `json:"name" binding:"max=5"`
		Quantity *int   `json:"quantity"`
	}

	t.Run("decodes body", func(t *testing.T) {
		h := &BaseHandler{}
		c, _ := newTestContext(http.MethodPost, "/test", `{"name":"abc","quantity":3}`)

		var req request
		require.True(t, h.BindJSON(c, &req))
		assert.Equal(t, "abc", req.Name)
		require.NotNil(t, req.Quantity)
		assert.Equal(t, 3, *req.Quantity)
	})

	t.Run("empty body leaves zero value", func(t *testing.T) {
		h := &BaseHandler{}
		c, _ := newTestContext(http.MethodPost, "/test", "")

		var req request
		assert.True(t, h.BindJSON(c, &req))
		assert.Nil(t, req.Quantity)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newTestContext(http.MethodPost, "/test", `{"name":`)

		var req request
		assert.False(t, h.BindJSON(c, &req))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code)
	})

	t.Run("wrong type", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newTestContext(http.MethodPost, "/test", `{"quantity":"three"}`)

		var req request
		assert.False(t, h.BindJSON(c, &req))
		assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code)
	})

	t.Run("binding tag failure", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newTestContext(http.MethodPost, "/test", `{"name":"far too long"}`)

		var req request
		assert.False(t, h.BindJSON(c, &req))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Fields, 1)
		assert.Equal(t, "name", resp.Error.Fields[0].Field)
	})
}
