package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/models"
	"clientdesk/internal/services"
)

type PipelineHandler struct {
	Service *services.PipelineService
}

func NewPipelineHandler(service *services.PipelineService) *PipelineHandler {
	return &PipelineHandler{Service: service}
}

func (h *PipelineHandler) Create(c *gin.Context) {
	var pipeline models.Pipeline
	if err := c.ShouldBindJSON(&pipeline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &pipeline); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pipeline)
}

func (h *PipelineHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pipeline, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pipeline)
}

func (h *PipelineHandler) List(c *gin.Context) {
	pipelines, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pipelines"})
		return
	}
	c.JSON(http.StatusOK, pipelines)
}
