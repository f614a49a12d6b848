package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusbook/appointment-scheduler/internal/httperr"
)

// RequireRole rejects principals whose role is not in the allowed set. Runs
// after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)

		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, fmt.Sprintf(
			"Access denied. %s role required.",
			strings.Join(roles, " or "),
		))
		c.Abort()
	}
}
