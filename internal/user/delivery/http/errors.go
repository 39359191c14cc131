package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/user"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

// mapError translates domain errors into HTTP responses.
// Unknown errors are logged and hidden behind a generic 500.
func (h *handler) mapError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		response.Conflict(c, err)
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Resp{
			ErrorCode: http.StatusUnauthorized,
			Message:   err.Error(),
		})
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
	}
}
