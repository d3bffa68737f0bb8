package httpresp

import (
	"github.com/gin-gonic/gin"

	"github.com/EnamulBokshi/skillbridge-server/internal/pagination"
)

// Success envelope mirrored by httperr.HTTPError on the failure side.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   any    `json:"error"`
	Message string `json:"message"`
}

type Page[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

func OK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Error:   nil,
		Message: message,
	})
}

func List[T any](c *gin.Context, status int, data []T, meta pagination.Meta, message string) {
	OK(c, status, Page[T]{Data: data, Pagination: meta}, message)
}
