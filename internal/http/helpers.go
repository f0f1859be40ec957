package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a generic 500. The actual
// error is never exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func respondAccepted(c *gin.Context, message string) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message})
}
