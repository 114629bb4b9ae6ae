package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/services"
)

type PreferenceHandler struct {
	Service *services.PreferenceService
}

func NewPreferenceHandler(service *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{Service: service}
}

func (h *PreferenceHandler) GetActionTypes(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	prefs, err := h.Service.GetActionTypes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) PutActionTypes(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	var req struct {
		CustomActionTypes []string `json:"custom_action_types"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prefs, err := h.Service.PutActionTypes(c.Request.Context(), userID, req.CustomActionTypes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
