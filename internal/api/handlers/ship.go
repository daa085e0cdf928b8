package handlers

import (
	"net/http"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// ShipHandler handles HTTP requests for ship operations
type ShipHandler struct {
	shipService service.ShipServiceInterface
}

// NewShipHandler creates a new ship handler
func NewShipHandler(shipService service.ShipServiceInterface) *ShipHandler {
	return &ShipHandler{
		shipService: shipService,
	}
}

// CreateShip handles POST /ships
// @Summary Register a ship
// @Tags ships
// @Accept json
// @Produce json
// @Param request body service.CreateShipRequest true "Ship"
// @Success 201 {object} map[string]interface{} "ship"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "IMO number already registered"
// @Security CookieAuth
// @Router /ships [post]
func (h *ShipHandler) CreateShip(c *gin.Context) {
	var req service.CreateShipRequest
	if !bindJSON(c, &req) {
		return
	}

	ship, err := h.shipService.CreateShip(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"ship": ship})
}

// ListShips handles GET /ships
// @Summary List ships
// @Tags ships
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} service.ShipListResponse
// @Security CookieAuth
// @Router /ships [get]
func (h *ShipHandler) ListShips(c *gin.Context) {
	page, perPage := pageParams(c)

	resp, err := h.shipService.ListShips(page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	respondPage(c, "ships", resp.Ships, resp.Pagination)
}

// GetShip handles GET /ships/:id
// @Summary Get a ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} map[string]interface{} "ship"
// @Failure 404 {object} ErrorResponse "Ship not found"
// @Security CookieAuth
// @Router /ships/{id} [get]
func (h *ShipHandler) GetShip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ship, err := h.shipService.GetShip(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"ship": ship})
}

// DeleteShip handles DELETE /ships/:id
// @Summary Delete a ship
// @Description Retire every installed component (one audit record each), then delete the ship with its components and their history. Runs in one transaction.
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} service.DeleteShipResult
// @Failure 404 {object} ErrorResponse "Ship not found"
// @Security CookieAuth
// @Router /ships/{id} [delete]
func (h *ShipHandler) DeleteShip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, _ := auth.GetUserID(c)

	result, err := h.shipService.DeleteShip(c.Request.Context(), id, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"retired_components": result.RetiredComponents})
}
