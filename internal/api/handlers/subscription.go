package handlers

import (
	"net/http"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles a user's component type subscriptions
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService service.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// ListSubscriptions handles GET /subscriptions
// @Summary Followed component types
// @Tags subscriptions
// @Produce json
// @Success 200 {object} map[string]interface{} "subscribed_type_ids"
// @Security CookieAuth
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	ids, err := h.subscriptionService.ListSubscribedTypeIDs(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"subscribed_type_ids": ids})
}

// Subscribe handles POST /subscribe_component_type
// @Summary Follow a component type
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body service.SubscribeRequest true "Type name"
// @Success 201 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Component type not found"
// @Failure 409 {object} ErrorResponse "Already subscribed"
// @Security CookieAuth
// @Router /subscribe_component_type [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req service.SubscribeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.subscriptionService.Subscribe(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, nil)
}

// Unsubscribe handles POST /unsubscribe_component_type
// @Summary Stop following a component type
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body service.UnsubscribeRequest true "Type id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Security CookieAuth
// @Router /unsubscribe_component_type [post]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req service.UnsubscribeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.subscriptionService.Unsubscribe(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil)
}
