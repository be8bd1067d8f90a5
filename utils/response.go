package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// ErrorResponse is the uniform client-error body. Every validation,
// authentication, permission, and not-found failure is reshaped into this
// single field; internal detail never leaks out.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

func SendValidationError(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}
