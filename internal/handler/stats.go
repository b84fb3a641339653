package handler

import (
	"net/http"

	"observatoire/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the global listing statistics.
type StatsHandler struct {
	searchService *service.SearchService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(searchService *service.SearchService) *StatsHandler {
	return &StatsHandler{searchService: searchService}
}

// Stats handles GET /api/v1/stats
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.searchService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
