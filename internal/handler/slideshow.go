package handler

import (
	"errors"
	"io"
	"net/http"

	"datafeed/internal/model"
	"datafeed/internal/service"

	"github.com/gin-gonic/gin"
)

// SlideshowHandler handles slideshow build HTTP requests
type SlideshowHandler struct {
	slideshowService *service.SlideshowService
}

// NewSlideshowHandler creates a new slideshow handler
func NewSlideshowHandler(slideshowService *service.SlideshowService) *SlideshowHandler {
	return &SlideshowHandler{
		slideshowService: slideshowService,
	}
}

// Build handles POST /api/v1/slideshow/build
//
// The playlist text arrives either in a text_content form field or as the
// raw request body, matching what the slideshow front-end posts.
func (h *SlideshowHandler) Build(c *gin.Context) {
	text := c.PostForm("text_content")
	if text == "" {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.BuildResponse{
				Success: false,
				Data:    []model.SlideRecord{},
				Error:   "Failed to read request body: " + err.Error(),
			})
			return
		}
		text = string(body)
	}

	response, err := h.slideshowService.Build(c.Request.Context(), text)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrEmptyPlaylist) {
			status = http.StatusBadRequest
		}
		c.JSON(status, model.BuildResponse{
			Success: false,
			Data:    []model.SlideRecord{},
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
