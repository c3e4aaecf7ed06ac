package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/myapp/bookstore/internal/apperror"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error kind
}

// SuccessResponse is a confirmation message.
type SuccessResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: string(apperror.KindValidation)})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("context", context).
		Msg("Internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: string(apperror.KindInternal)})
}

// respondAppError maps err to a response. Every client-caused kind is reported
// as 400 with its message, except a login lockout, which is 429 with Retry-After.
// Anything else is an internal error.
func respondAppError(c *gin.Context, err error, context string) {
	kind := apperror.KindOf(err)
	switch kind {
	case apperror.KindInternal:
		respondInternalError(c, err, context)
		return
	case apperror.KindRateLimited:
		var wait interface{ RetryAfterSeconds() int }
		if errors.As(err, &wait) {
			c.Header("Retry-After", strconv.Itoa(wait.RetryAfterSeconds()))
		}
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: apperror.MessageOf(err), Code: string(kind)})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperror.MessageOf(err), Code: string(kind)})
}

// respondAppErrorText is respondAppError for plain-text endpoints.
func respondAppErrorText(c *gin.Context, err error, context string) {
	if apperror.KindOf(err) == apperror.KindInternal {
		log.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Str("context", context).
			Msg("Internal error")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.String(http.StatusBadRequest, apperror.MessageOf(err))
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseQueryID extracts and validates an unsigned integer ID from query parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseQueryID(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Query(paramName)
	if idStr == "" {
		respondBadRequest(c, paramName+" is required")
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into req and runs its validation rules.
func bindJSON(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		respondAppError(c, apperror.Validation(err.Error()), "validate request")
		return false
	}
	return true
}
