package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// GetSummary returns the dashboard block as of now, or as of the optional
// `as_of` query parameter (RFC3339).
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	var asOf time.Time
	if v := c.Query("as_of"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "as_of must be RFC3339"})
			return
		}
		asOf = parsed
	}
	summary, err := h.Service.GetSummary(c.Request.Context(), asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) GetBoard(c *gin.Context) {
	board, err := h.Service.GetBoard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, board)
}
