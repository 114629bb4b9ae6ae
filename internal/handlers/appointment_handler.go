package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/models"
	"clientdesk/internal/services"
)

type AppointmentHandler struct {
	Service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &appt); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	appt, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body models.Appointment
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), id, &body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	var filter models.AppointmentFilter
	if v := c.Query("from"); v != "" {
		if from, err := time.Parse(time.RFC3339, v); err == nil {
			filter.From = &from
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err := time.Parse(time.RFC3339, v); err == nil {
			filter.To = &to
		}
	}
	appts, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}
