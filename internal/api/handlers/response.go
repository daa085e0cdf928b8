package handlers

import (
	"net/http"
	"strconv"

	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/logger"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"error message"`
}

// SuccessResponse is returned by endpoints with no payload
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

func respondOK(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(status, payload)
}

func respondPage(c *gin.Context, key string, items interface{}, p service.Pagination) {
	respondOK(c, http.StatusOK, gin.H{
		key:            items,
		"total":        p.Total,
		"pages":        p.Pages,
		"current_page": p.CurrentPage,
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// respondError maps a service error to its HTTP status. Unknown errors are
// logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		respondMessage(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondMessage(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err):
		respondMessage(c, http.StatusConflict, err.Error())
	case apperrors.IsAuthentication(err):
		respondMessage(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondMessage(c, http.StatusForbidden, err.Error())
	case apperrors.IsTransient(err):
		logger.WithContext(c.Request.Context()).WithError(err).Warn("Database unavailable")
		respondMessage(c, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("Unhandled error")
		respondMessage(c, http.StatusInternalServerError, "internal server error")
	}
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondMessage(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// pageParams reads page and per_page; malformed values fall back to the
// service defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return page, perPage
}
