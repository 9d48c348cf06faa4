//go:build unit

package api_test

import (
	"court-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
)

const testUserID = "user_0123456789ab"

// fakeAuth stands in for RequireAuth: a request with an Authorization header
// is treated as signed in with the given role.
func fakeAuth(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", testUserID)
			c.Set("user_role", role)
		}
		c.Next()
	}
}
