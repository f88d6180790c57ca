package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kashvi-creations/storefront-api/pkg/helpers"
	"github.com/kashvi-creations/storefront-api/pkg/response"
)

// Context keys the handlers read the authenticated identity from.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth reads the session cookie, validates the token at the boundary,
// and injects the identity into the Gin context. No server-side session
// state is consulted.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "not authenticated", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}
