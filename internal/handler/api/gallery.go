package api

import (
	"errors"
	"net/http"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryCommands commands.GalleryCommands
	galleryQueries  queries.GalleryQueries
}

func NewGalleryHandler(galleryCommands commands.GalleryCommands, galleryQueries queries.GalleryQueries) *GalleryHandler {
	return &GalleryHandler{
		galleryCommands: galleryCommands,
		galleryQueries:  galleryQueries,
	}
}

// @Summary Gallery
// @Description List gallery images in display order
// @Tags gallery
// @Produce json
// @Success 200 {array} resdto.GalleryImageResponse
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	views, err := h.galleryQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryImageViews(views))
}

// @Summary Add gallery image
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGalleryImageRequest true "Gallery image"
// @Success 201 {object} resdto.GalleryImageResponse
// @Failure 400 {object} map[string]string
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req reqdto.CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.galleryCommands.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGalleryImageView(view))
}

// @Summary Update gallery image
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Param request body reqdto.UpdateGalleryImageRequest true "Gallery image patch"
// @Success 200 {object} resdto.GalleryImageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/gallery/{id} [patch]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.galleryCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, commands.ErrGalleryImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gallery image not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryImageView(view))
}

// @Summary Delete gallery image
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.galleryCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrGalleryImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gallery image not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
