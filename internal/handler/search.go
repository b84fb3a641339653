package handler

import (
	"net/http"
	"strconv"

	"observatoire/internal/model"
	"observatoire/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search and listing HTTP requests.
type SearchHandler struct {
	searchService *service.SearchService
	defaultLimit  int
	maxLimit      int
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *service.SearchService, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Limit = h.capLimit(req.Limit)

	response, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Properties handles GET /api/v1/properties with query-param filters.
func (h *SearchHandler) Properties(c *gin.Context) {
	filters := &model.SearchFilters{}

	if v := c.Query("source"); v != "" {
		filters.Source = &v
	}
	if v := c.Query("city"); v != "" {
		filters.City = &v
	}
	if v := c.Query("type"); v != "" {
		filters.PropertyType = &v
	}
	if v := c.Query("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bedrooms"})
			return
		}
		filters.Bedrooms = &n
	}
	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		filters.PriceMin = &f
	}
	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		filters.PriceMax = &f
	}
	if v := c.Query("status"); v != "" {
		var t model.TransactionType
		if err := t.UnmarshalJSON([]byte(strconv.Quote(v))); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status, use Vente or Location"})
			return
		}
		filters.TransactionType = &t
	}

	limit := h.defaultLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	limit = h.capLimit(limit)

	results, err := h.searchService.ListProperties(c.Request.Context(), filters, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(results),
		"properties": results,
	})
}

// GetProperty handles GET /api/v1/properties/:source/:id
func (h *SearchHandler) GetProperty(c *gin.Context) {
	source := c.Param("source")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, err := h.searchService.GetProperty(c.Request.Context(), source, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing: " + err.Error()})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *SearchHandler) capLimit(limit int) int {
	if limit <= 0 {
		return h.defaultLimit
	}
	if limit > h.maxLimit {
		return h.maxLimit
	}
	return limit
}
