package utilities

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body for message-only results and all error results
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse sends an error reply. The detail is logged server-side only;
// clients get the message and nothing else.
func ErrorResponse(c *gin.Context, status int, message string, detail string) {
	if detail != "" {
		log.Printf("✗ %s %s -> %d %s: %s", c.Request.Method, c.Request.URL.Path, status, message, detail)
	}
	c.JSON(status, MessageResponse{Message: message})
}

// ValidationErrorResponse sends a 400 for malformed request payloads
func ValidationErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload", err.Error())
}

// SuccessMessage sends a message-only success reply
func SuccessMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
