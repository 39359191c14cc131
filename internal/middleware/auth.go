package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

const scopeKey = "auth.scope"

// Auth validates the Bearer token and stores the caller's scope in the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID})
		c.Next()
	}
}

// GetScope returns the authenticated scope stored by Auth.
// The bool is false if the route was not protected by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
