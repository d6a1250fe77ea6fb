package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse defines the standard success response structure.
// Warning is only populated for partial successes: the requested store
// mutation completed but a dependent carrier action did not, and the caller
// must be able to tell that apart from a full success.
type SuccessResponse struct {
	Status  string      `json:"status"`            // e.g. "success"
	Message string      `json:"message,omitempty"` // optional success message
	Warning string      `json:"warning,omitempty"` // non-empty iff the outcome is a partial success
	Data    interface{} `json:"data,omitempty"`    // response payload
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Status  string   `json:"status"`            // e.g. "error"
	Message string   `json:"message"`           // error message
	Details []string `json:"details,omitempty"` // optional error details
}

// RespondJSON is a generic helper for sending JSON responses.
func RespondJSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// RespondSuccess sends a standard success JSON response.
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	response := SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	if message == "" && data == nil {
		response.Message = "Operation successful"
	}
	RespondJSON(c, status, response)
}

// RespondSuccessWithWarning sends a partial-success response: the primary
// mutation succeeded but a dependent action failed and needs operator
// reconciliation. Never collapse this into a plain success.
func RespondSuccessWithWarning(c *gin.Context, status int, data interface{}, message, warning string) {
	RespondJSON(c, status, SuccessResponse{
		Status:  "success",
		Message: message,
		Warning: warning,
		Data:    data,
	})
}

// RespondError sends a standard error JSON response.
func RespondError(c *gin.Context, status int, message string, details ...string) {
	response := ErrorResponse{
		Status:  "error",
		Message: message,
	}
	if len(details) > 0 {
		response.Details = details
	}
	RespondJSON(c, status, response)
}

// APIErrorResponse matches the documented error format
// { "error": "short description", "details": ... }.
// details may be a map or a plain string.
type APIErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondAPIError sends an error response in the documented API format.
// The underlying error text belongs in details; the error field stays short.
func RespondAPIError(c *gin.Context, status int, errorMessage string, details interface{}) {
	response := APIErrorResponse{
		Error: errorMessage,
	}
	if details != nil {
		response.Details = details
	}
	c.AbortWithStatusJSON(status, response)
}

// RespondValidationError sends the response for request validation failures.
func RespondValidationError(c *gin.Context, details interface{}) {
	RespondAPIError(c, http.StatusBadRequest, "Invalid request parameters", details)
}

// RespondUnauthorizedError sends an authentication failure response.
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	errMsg := "Authentication required or token invalid/expired"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondAPIError(c, http.StatusUnauthorized, errMsg, nil)
}

// RespondForbiddenError sends an authorization failure response for callers
// that are authenticated but lack the required privilege.
func RespondForbiddenError(c *gin.Context, message ...string) {
	errMsg := "Administrator privilege required"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondAPIError(c, http.StatusForbidden, errMsg, nil)
}

// RespondNotFoundError sends a resource-not-found response.
func RespondNotFoundError(c *gin.Context, resourceName string) {
	RespondAPIError(c, http.StatusNotFound, resourceName+" not found", nil)
}

// RespondInternalServerError sends a server error response.
func RespondInternalServerError(c *gin.Context, message string, errDetails ...string) {
	var details interface{}
	if len(errDetails) > 0 {
		details = errDetails[0]
	}
	RespondAPIError(c, http.StatusInternalServerError, message, details)
}

// RespondConflictError sends a conflict response (e.g. resource already
// exists, or an assignment race was lost).
func RespondConflictError(c *gin.Context, message string, details ...string) {
	var detailContent interface{}
	if len(details) > 0 {
		detailContent = details[0]
	}
	RespondAPIError(c, http.StatusConflict, message, detailContent)
}
