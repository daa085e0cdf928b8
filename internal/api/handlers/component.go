package handlers

import (
	"net/http"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for components and their history
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// CreateComponent handles POST /ships/:id/components
// @Summary Install a component on a ship
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param request body service.CreateComponentRequest true "Component"
// @Success 201 {object} map[string]interface{} "component"
// @Failure 400 {object} ErrorResponse "Validation failed or unknown component type"
// @Failure 404 {object} ErrorResponse "Ship not found"
// @Security CookieAuth
// @Router /ships/{id}/components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	shipID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.CreateComponentRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.CreateComponent(shipID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"component": component})
}

// ListShipComponents handles GET /ships/:id/components
// @Summary List a ship's components
// @Tags components
// @Produce json
// @Param id path int true "Ship ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} service.ComponentListResponse
// @Failure 404 {object} ErrorResponse "Ship not found"
// @Security CookieAuth
// @Router /ships/{id}/components [get]
func (h *ComponentHandler) ListShipComponents(c *gin.Context) {
	shipID, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, perPage := pageParams(c)

	resp, err := h.componentService.ListShipComponents(shipID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	respondPage(c, "components", resp.Components, resp.Pagination)
}

// GetComponent handles GET /components/:id
// @Summary Get a component
// @Description Full component view with its ship, its type and the computed expiration
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} map[string]interface{} "component"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security CookieAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	component, err := h.componentService.GetComponent(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"component": component})
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete a retired component
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse "Component is not retired"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security CookieAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.componentService.DeleteComponent(id); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil)
}

// ListUpdates handles GET /components/:id/updates
// @Summary Component history
// @Description Status updates of a component, newest first
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(5)
// @Success 200 {object} service.ComponentUpdateListResponse
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security CookieAuth
// @Router /components/{id}/updates [get]
func (h *ComponentHandler) ListUpdates(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, perPage := pageParams(c)

	resp, err := h.componentService.ListUpdates(id, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	respondPage(c, "updates", resp.Updates, resp.Pagination)
}

// UpdateStatus handles POST /components/:id/update_status
// @Summary Record a status update
// @Description Set the status, reset the inspection date to today and append a history record
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param request body service.UpdateStatusRequest true "Update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security CookieAuth
// @Router /components/{id}/update_status [post]
func (h *ComponentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, _ := auth.GetUserID(c)

	var req service.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.componentService.UpdateStatus(c.Request.Context(), id, actorID, &req); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil)
}

// ListExpiring handles GET /expiring_components
// @Summary Components due for inspection
// @Description Components whose expiration falls between today and the look-ahead window, soonest first
// @Tags components
// @Produce json
// @Param status query string false "Only components in this status"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} service.ExpiringListResponse
// @Security CookieAuth
// @Router /expiring_components [get]
func (h *ComponentHandler) ListExpiring(c *gin.Context) {
	var status *string
	if s, ok := c.GetQuery("status"); ok && s != "" {
		status = &s
	}
	page, perPage := pageParams(c)

	resp, err := h.componentService.ListExpiring(status, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	respondPage(c, "expiring_components", resp.Components, resp.Pagination)
}
