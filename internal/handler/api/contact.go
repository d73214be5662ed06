package api

import (
	"errors"
	"net/http"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	messageCommands commands.MessageCommands
	messageQueries  queries.MessageQueries
}

func NewContactHandler(messageCommands commands.MessageCommands, messageQueries queries.MessageQueries) *ContactHandler {
	return &ContactHandler{
		messageCommands: messageCommands,
		messageQueries:  messageQueries,
	}
}

// @Summary Send contact message
// @Description Submit a message through the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContactMessageRequest true "Contact message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req reqdto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.messageCommands.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

// @Summary List messages
// @Description List contact messages, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread messages"
// @Success 200 {array} resdto.MessageResponse
// @Router /admin/messages [get]
func (h *ContactHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	limit, offset := pagination(c)
	views, err := h.messageQueries.List(c.Request.Context(), unreadOnly, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMessageViews(views))
}

// @Summary Get message
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.messageQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMessageView(view))
}

// @Summary Mark message read
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id}/read [patch]
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.messageCommands.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commands.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMessageView(view))
}

// @Summary Delete message
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.messageCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
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
