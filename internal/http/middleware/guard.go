package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klikphone/sav-portal/internal/session"
)

const IdentityKey = "identity"

// RequireRole sends anyone the gate does not allow back to the landing page.
// With no roles any signed-in identity passes.
func RequireRole(gate *session.Gate, roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Allows(roles...) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		if id, ok := gate.Identity(); ok {
			c.Set(IdentityKey, id)
		}
		c.Next()
	}
}
