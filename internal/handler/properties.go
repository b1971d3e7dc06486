package handler

import (
	"net/http"
	"strconv"

	"datafeed/internal/model"
	"datafeed/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property listing HTTP requests
type PropertyHandler struct {
	propertyService *service.PropertyService
	defaultLimit    int
	maxLimit        int
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *service.PropertyService, defaultLimit, maxLimit int) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
	}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	limit := h.defaultLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	offset := 0
	if v := c.Query("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
			return
		}
		offset = parsed
	}

	filters := &model.PropertyFilters{}
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	if v := c.Query("type"); v != "" {
		filters.Type = &v
	}

	response, err := h.propertyService.List(c.Request.Context(), filters, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	ref := c.Param("id")

	property, err := h.propertyService.Get(c.Request.Context(), ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property: " + err.Error()})
		return
	}

	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// Images handles GET /api/v1/properties/:id/images
func (h *PropertyHandler) Images(c *gin.Context) {
	id := c.Param("id")

	images, err := h.propertyService.Images(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading images: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}
