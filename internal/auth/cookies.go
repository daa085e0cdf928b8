package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie and header names shared with the web client
const (
	AccessCookieName      = "access_token_cookie"
	RefreshCookieName     = "refresh_token_cookie"
	AccessCSRFCookieName  = "csrf_access_token"
	RefreshCSRFCookieName = "csrf_refresh_token"
	CSRFHeaderName        = "X-CSRF-TOKEN"

	accessCookiePath  = "/api/"
	refreshCookiePath = "/api/refresh"
	csrfCookiePath    = "/"
)

// SetAccessCookies writes the access token and its readable CSRF twin
func (s *AuthService) SetAccessCookies(c *gin.Context, token *IssuedToken) {
	maxAge := int(token.TTL.Seconds())
	s.setCookie(c, AccessCookieName, token.Token, accessCookiePath, maxAge, true)
	s.setCookie(c, AccessCSRFCookieName, token.CSRF, csrfCookiePath, maxAge, false)
}

// SetRefreshCookies writes the refresh token and its readable CSRF twin
func (s *AuthService) SetRefreshCookies(c *gin.Context, token *IssuedToken) {
	maxAge := int(token.TTL.Seconds())
	s.setCookie(c, RefreshCookieName, token.Token, refreshCookiePath, maxAge, true)
	s.setCookie(c, RefreshCSRFCookieName, token.CSRF, csrfCookiePath, maxAge, false)
}

// UnsetCookies expires all auth cookies
func (s *AuthService) UnsetCookies(c *gin.Context) {
	s.setCookie(c, AccessCookieName, "", accessCookiePath, -1, true)
	s.setCookie(c, AccessCSRFCookieName, "", csrfCookiePath, -1, false)
	s.setCookie(c, RefreshCookieName, "", refreshCookiePath, -1, true)
	s.setCookie(c, RefreshCSRFCookieName, "", csrfCookiePath, -1, false)
}

func (s *AuthService) setCookie(c *gin.Context, name, value, path string, maxAge int, httpOnly bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		Secure:   s.config.CookieSecure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}
