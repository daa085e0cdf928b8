package handlers

import (
	"net/http"

	"maritime-maintenance/internal/auth"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	userService service.UserServiceInterface
	authService *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService service.UserServiceInterface, authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

// Register handles POST /register
// @Summary Register a user
// @Description Create a regular user account and start a session. Sets the access, refresh and CSRF cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Credentials"
// @Success 201 {object} map[string]interface{} "Registered"
// @Failure 400 {object} ErrorResponse "Missing username or password"
// @Failure 409 {object} ErrorResponse "Username taken"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.startSession(c, user.ID, user.RoleID) {
		return
	}
	respondOK(c, http.StatusCreated, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"role_id":  user.RoleID,
	})
}

// Login handles POST /login
// @Summary Log in
// @Description Check credentials and start a session. Sets the access, refresh and CSRF cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Logged in"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Authenticate(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.startSession(c, user.ID, user.RoleID) {
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"role_id":  user.RoleID,
	})
}

// Logout handles POST /logout
// @Summary Log out
// @Description Clear every auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Security CookieAuth
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.UnsetCookies(c)
	respondOK(c, http.StatusOK, nil)
}

// Refresh handles POST /refresh
// @Summary Refresh the access token
// @Description Issue a new access token from the refresh cookie. Requires the refresh CSRF value in X-CSRF-TOKEN.
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse "Missing or expired refresh token"
// @Failure 404 {object} ErrorResponse "User no longer exists"
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.IssueAccessToken(user.ID, user.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.authService.SetAccessCookies(c, token)
	respondOK(c, http.StatusOK, nil)
}

// Me handles GET /me
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "user_id, username, role_id, telegram_id"
// @Failure 401 {object} ErrorResponse
// @Security CookieAuth
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"user_id":     user.ID,
		"username":    user.Username,
		"role_id":     user.RoleID,
		"telegram_id": user.TelegramID,
	})
}

func (h *AuthHandler) startSession(c *gin.Context, userID, roleID uint) bool {
	pair, err := h.authService.IssueTokens(userID, roleID)
	if err != nil {
		respondError(c, err)
		return false
	}
	h.authService.SetAccessCookies(c, pair.Access)
	h.authService.SetRefreshCookies(c, pair.Refresh)
	return true
}
