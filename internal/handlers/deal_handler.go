package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/middleware"
	"clientdesk/internal/models"
	"clientdesk/internal/services"
)

type DealHandler struct {
	Service *services.DealService
	Tg      *services.TelegramService
}

func NewDealHandler(service *services.DealService, tg *services.TelegramService) *DealHandler {
	return &DealHandler{Service: service, Tg: tg}
}

func (h *DealHandler) Create(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &deal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func (h *DealHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deal, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body models.Deal
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

func (h *DealHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DealHandler) List(c *gin.Context) {
	var filter models.DealFilter
	if s := c.Query("stage"); s != "" {
		stage := models.DealStage(s)
		filter.Stage = &stage
	}
	if v := c.Query("customer_id"); v != "" {
		if customerID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CustomerID = &customerID
		}
	}
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

	deals, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list deals"})
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) UpdateStage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Stage models.DealStage `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal, err := h.Service.UpdateStage(c.Request.Context(), id, req.Stage)
	if err != nil {
		respondError(c, err)
		return
	}
	if deal.Stage == models.StageCompleted {
		middleware.RecordDealCompleted()
		h.Tg.NotifyDealCompleted(*deal)
	}
	c.JSON(http.StatusOK, deal)
}
