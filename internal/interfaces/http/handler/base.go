package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Message sends a 200 response that only carries a message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// Error sends an error response, deriving the status code from the error code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeBadRequest, message)
}

// ParseID binds the :id path parameter. It writes the 400 response itself and
// reports false when the id is not a positive integer.
func (h *BaseHandler) ParseID(c *gin.Context) (int64, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return req.ID, true
}

// BindJSON decodes the request body into req. An empty body leaves req at its
// zero value so that the service reports the missing fields. Decoding and
// binding failures are answered here and reported as false.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	if details := middleware.ValidationDetails(err); details != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(details, middleware.GetRequestID(c)))
		return false
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.Error(c, dto.ErrCodeRequestTooLarge, "request body exceeds maximum allowed size")
		return false
	}

	h.Error(c, dto.ErrCodeInvalidJSON, "invalid JSON body: "+jsonErrorMessage(err))
	return false
}

// HandleError converts service errors to HTTP responses. Domain errors keep
// their code and message; store failures are logged with the cause, which is
// only returned to the client in debug mode.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := middleware.GetRequestID(c)

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		logger.L(c.Request.Context()).Error("Unhandled error", zap.Error(err))
		resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, "an unexpected error occurred", requestID)
		if gin.IsDebugging() {
			resp.Error.Detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	resp := dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID)
	if domainErr.Code == shared.CodeStore {
		logger.L(c.Request.Context()).Error("Store failure", zap.Error(err))
		if gin.IsDebugging() && domainErr.Err != nil {
			resp.Error.Detail = domainErr.Err.Error()
		}
	}
	c.JSON(dto.GetHTTPStatus(domainErr.Code), resp)
}

// jsonErrorMessage trims the "json: " prefix of decoder errors
func jsonErrorMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "json: ")
}
