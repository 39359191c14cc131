package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/task"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

// mapError translates domain errors into HTTP responses.
// Unknown errors are logged and hidden behind a generic 500.
func (h *handler) mapError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrAlreadyCompleted):
		response.Conflict(c, err)
	case errors.Is(err, task.ErrEmptyInput):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
	}
}
