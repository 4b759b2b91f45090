package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestValidationDetails(t *testing.T) {
	type testRequest struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"max=5"`
	}

	SetupValidator()

	var details []struct{ field, message string }
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req testRequest
		err := c.ShouldBindJSON(&req)
		for _, d := range ValidationDetails(err) {
			details = append(details, struct{ field, message string }{d.Field, d.Message})
		}
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"email":"invalid","name":"too long"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, details, 2)
	assert.Equal(t, "email", details[0].field)
	assert.Equal(t, "Invalid email format", details[0].message)
	assert.Equal(t, "name", details[1].field)
	assert.Equal(t, "Must be at most 5 characters", details[1].message)
}

func TestValidationDetails_NonValidatorError(t *testing.T) {
	assert.Nil(t, ValidationDetails(errors.New("unexpected EOF")))
	assert.Nil(t, ValidationDetails(nil))
}
