// Package api defines the shared JSON response envelope for all endpoints.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
// Success responses carry Data; failures carry Message and, for
// field-level validation failures, Errors.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK writes a success envelope with the given status, message and payload.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// FailWithErrors writes a failure envelope carrying per-field error details.
func FailWithErrors(c *gin.Context, status int, message string, errs []string) {
	c.JSON(status, Response{Success: false, Message: message, Errors: errs})
}

// AbortUnauthorized aborts the request with a 401 failure envelope.
// Used by middleware so later handlers do not run.
func AbortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Success: false, Message: message})
}
