package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase"
	"court-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.CredentialResolver
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

var errMissingCredential = errors.New("missing credential")

func NewAuthMiddleware(resolver usecase.CredentialResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequireAuth accepts the session cookie first and the bearer header second.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredential, "Not authenticated", nil)
			return
		}

		u, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrSessionExpired):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired", nil)
			case errs.Is(err, errs.ErrUnauthenticated):
				slog.Debug("credential rejected", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Not authenticated", nil)
			default:
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
			return
		}

		setActor(c, u.ID(), u.Role())
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredential, "Not authenticated", nil)
			return
		}
		if r != role {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Admin access required", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// ExtractToken returns the raw credential of the request, if any.
func ExtractToken(c *gin.Context) string {
	return extractToken(c)
}

func setActor(c *gin.Context, userID string, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": userID,
		"role":    string(role),
	})
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor is only meaningful behind RequireAuth.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, _ := GetUserRole(c)
	return shared.Actor{UserID: id, Role: role}, true
}
