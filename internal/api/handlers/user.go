package handlers

import (
	"net/http"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUser handles PATCH /users/:id
// @Summary Update own profile
// @Description Set or clear the Telegram chat id. Users may only change their own record. null or "" clears the id.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body service.UpdateUserRequest true "telegram_id as number, numeric string, null or empty string"
// @Success 200 {object} map[string]interface{} "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid telegram_id"
// @Failure 403 {object} ErrorResponse "Not your account"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security CookieAuth
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, _ := auth.GetUserID(c)

	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateTelegramID(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"user": user})
}
