package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for all successful responses.
type Response struct {
	Result any `json:"result"`
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Message string `json:"message" example:"Missing required field: customer_id"`
}

// Result writes a successful response with v as result.
func Result(c *gin.Context, v any) {
	c.JSON(http.StatusOK, Response{Result: v})
}

// NewError aborts the request and writes an error response.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Message: err.Error(),
	})
}
