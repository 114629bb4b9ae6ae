package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/middleware"
	"clientdesk/internal/models"
	"clientdesk/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &payment); err != nil {
		respondError(c, err)
		return
	}
	middleware.RecordPayment(string(payment.Status))
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	var filter models.PaymentFilter
	if v := c.Query("status"); v != "" {
		status := models.PaymentStatus(v)
		filter.Status = &status
	}
	if v := c.Query("customer_id"); v != "" {
		if customerID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CustomerID = &customerID
		}
	}
	payments, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
