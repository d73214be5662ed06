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

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Submit review
// @Description Submit a review; it becomes visible after moderation
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reviewCommands.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary List approved reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews [get]
func (h *ReviewHandler) ListApproved(c *gin.Context) {
	limit, offset := pagination(c)
	views, err := h.reviewQueries.ListApproved(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Featured reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews/featured [get]
func (h *ReviewHandler) Featured(c *gin.Context) {
	views, err := h.reviewQueries.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Rating summary
// @Description Average rating and count over approved reviews
// @Tags reviews
// @Produce json
// @Success 200 {object} resdto.RatingSummaryResponse
// @Router /reviews/summary [get]
func (h *ReviewHandler) Summary(c *gin.Context) {
	view, err := h.reviewQueries.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatingSummaryView(view))
}

// @Summary List reviews
// @Description List reviews for moderation, optionally only pending ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param pending query bool false "Only unapproved reviews"
// @Success 200 {array} resdto.ReviewResponse
// @Router /admin/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	filter := queries.ReviewFilter{
		OnlyPending: c.Query("pending") == "true",
	}

	limit, offset := pagination(c)
	views, err := h.reviewQueries.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Moderate review
// @Description Approve or feature a review
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ModerateReviewRequest true "Moderation flags"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id} [patch]
func (h *ReviewHandler) Moderate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reviewCommands.Moderate(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, commands.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Review not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reviewCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Review not found",
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
