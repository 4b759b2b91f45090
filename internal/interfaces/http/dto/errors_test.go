package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeStore, http.StatusInternalServerError},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeRouteNotFound, http.StatusNotFound},
		{ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{ErrCodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestDomainCodesMatchTaxonomy(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", ErrCodeValidation)
	assert.Equal(t, "NOT_FOUND", ErrCodeNotFound)
	assert.Equal(t, "CONFLICT", ErrCodeConflict)
	assert.Equal(t, "STORE_ERROR", ErrCodeStore)
}

func TestResponseJSON(t *testing.T) {
	t.Run("success omits error", func(t *testing.T) {
		body, err := json.Marshal(NewSuccessResponse(map[string]int{"count": 0}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":{"count":0}}`, string(body))
	})

	t.Run("error carries code and request id", func(t *testing.T) {
		body, err := json.Marshal(NewErrorResponseWithRequestID(ErrCodeNotFound, "order not found", "req-1"))
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"success":false,"error":{"code":"NOT_FOUND","message":"order not found"},"request_id":"req-1"}`,
			string(body))
	})

	t.Run("validation lists fields", func(t *testing.T) {
		resp := NewValidationErrorResponse([]ValidationDetail{{Field: "name", Message: "name is required"}}, "")
		assert.False(t, resp.Success)
		assert.Equal(t, ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Fields, 1)
		assert.Equal(t, "name", resp.Error.Fields[0].Field)
	})
}
