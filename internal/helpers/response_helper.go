package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope for every successful API response.
// Count is only present on list endpoints that report it.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   *int `json:"count,omitempty"`
}

// ErrorResponse is the envelope for every failed API response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RespondWithData writes a success envelope without a count.
func RespondWithData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// RespondWithList writes a success envelope including the result count.
func RespondWithList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// RespondWithError writes the failure envelope. The message is what the
// client sees; the underlying cause stays in the server logs.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
