package api

import (
	"net/http"

	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsQueries queries.StatsQueries
}

func NewStatsHandler(statsQueries queries.StatsQueries) *StatsHandler {
	return &StatsHandler{
		statsQueries: statsQueries,
	}
}

// @Summary Dashboard stats
// @Description Counters for the back office dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardStatsResponse
// @Router /admin/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	view, err := h.statsQueries.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStatsView(view))
}

// @Summary Site stats
// @Description Public counters shown on the website
// @Tags public
// @Produce json
// @Success 200 {object} resdto.SiteStatsResponse
// @Router /stats [get]
func (h *StatsHandler) Site(c *gin.Context) {
	view, err := h.statsQueries.Site(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSiteStatsView(view))
}
