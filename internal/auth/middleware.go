package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"maritime-maintenance/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware
const (
	ContextUserID = "user_id"
	ContextRoleID = "role_id"
	ContextClaims = "auth_claims"
)

// AuthMiddleware provides cookie-based JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the access token cookie and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.require(AccessCookieName, TokenTypeAccess)
}

// RequireRefresh validates the refresh token cookie; used only by the refresh endpoint
func (m *AuthMiddleware) RequireRefresh() gin.HandlerFunc {
	return m.require(RefreshCookieName, TokenTypeRefresh)
}

func (m *AuthMiddleware) require(cookieName, tokenType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			abort(c, http.StatusUnauthorized, "access token is missing or invalid")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString, tokenType)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				abort(c, http.StatusUnauthorized, "token has expired")
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected token")
			abort(c, http.StatusUnprocessableEntity, "invalid token")
			return
		}

		if requiresCSRF(c.Request.Method) {
			header := c.GetHeader(CSRFHeaderName)
			if header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(claims.CSRF)) != 1 {
				abort(c, http.StatusUnauthorized, "CSRF token is missing or does not match")
				return
			}
		}

		// Set user context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRoleID, claims.RoleID)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireRole allows the request only for the given role. It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roleID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetRoleID(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if current != roleID {
			abort(c, http.StatusForbidden, "access denied")
			return
		}
		c.Next()
	}
}

func requiresCSRF(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint)
	return id, ok
}

// GetRoleID is a helper function to extract the role from context
func GetRoleID(c *gin.Context) (uint, bool) {
	roleID, exists := c.Get(ContextRoleID)
	if !exists {
		return 0, false
	}

	id, ok := roleID.(uint)
	return id, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
