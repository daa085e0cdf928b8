package handlers

import (
	"net/http"

	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentTypeHandler handles HTTP requests for the component type catalogue
type ComponentTypeHandler struct {
	typeService service.ComponentTypeServiceInterface
}

// NewComponentTypeHandler creates a new component type handler
func NewComponentTypeHandler(typeService service.ComponentTypeServiceInterface) *ComponentTypeHandler {
	return &ComponentTypeHandler{
		typeService: typeService,
	}
}

// ListTypes handles GET /component_types
// @Summary List component types
// @Tags component_types
// @Produce json
// @Success 200 {object} map[string]interface{} "component_types"
// @Security CookieAuth
// @Router /component_types [get]
func (h *ComponentTypeHandler) ListTypes(c *gin.Context) {
	types, err := h.typeService.ListTypes()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"component_types": types})
}

// CreateType handles POST /component_types
// @Summary Create a component type
// @Description Administrators only
// @Tags component_types
// @Accept json
// @Produce json
// @Param request body service.CreateComponentTypeRequest true "Type"
// @Success 201 {object} map[string]interface{} "component_type"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Security CookieAuth
// @Router /component_types [post]
func (h *ComponentTypeHandler) CreateType(c *gin.Context) {
	var req service.CreateComponentTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	componentType, err := h.typeService.CreateType(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"component_type": componentType})
}
