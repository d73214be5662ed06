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

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary Upcoming events
// @Description List active events that have not yet ended
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	views, err := h.eventQueries.ListUpcoming(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary List all events
// @Description List all events including inactive and past ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EventResponse
// @Router /admin/events [get]
func (h *EventHandler) ListAll(c *gin.Context) {
	limit, offset := pagination(c)
	views, err := h.eventQueries.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Create event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Event patch"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.eventCommands.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EventHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
