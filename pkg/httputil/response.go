// Package httputil provides HTTP response helpers shared by all handlers.
package httputil

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-music/server/pkg/errors"
)

// Response represents the standard API response envelope.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{
		Status: "success",
		Data:   data,
	})
}

// SuccessMessage sends a successful response with a message and optional data.
func SuccessMessage(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Fail maps an application error to its HTTP status. Anticipated client
// errors surface their message with status "fail"; anything else is a server
// fault reported with a generic message, never internal detail.
func Fail(c *gin.Context, err error) {
	status := errors.GetHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		c.JSON(status, Response{
			Status:  "error",
			Message: "an internal server error occurred",
		})
		return
	}

	message := err.Error()
	var appErr *errors.Error
	if goerrors.As(err, &appErr) {
		message = appErr.Message
	}

	c.JSON(status, Response{
		Status:  "fail",
		Message: message,
	})
}
