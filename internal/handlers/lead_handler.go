package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/authz"
	"clientdesk/internal/middleware"
	"clientdesk/internal/models"
	"clientdesk/internal/services"
)

type LeadHandler struct {
	Service   *services.LeadService
	Customers *services.CustomerService
}

func NewLeadHandler(service *services.LeadService, customers *services.CustomerService) *LeadHandler {
	return &LeadHandler{Service: service, Customers: customers}
}

func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// owner comes from the token, the payload value is ignored
	userID, _ := getUserAndRole(c)
	lead.OwnerID = userID

	if err := h.Service.Create(c.Request.Context(), &lead); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, roleID := getUserAndRole(c)

	current, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	// sales edit their own; elevated roles edit any
	if current.OwnerID != userID && !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var body models.Lead
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// elevated roles may reassign the owner; a zero owner always means
	// "keep the current one", never an actual reassignment
	if !authz.IsElevated(roleID) || body.OwnerID == 0 {
		body.OwnerID = current.OwnerID
	}

	updated, err := h.Service.Update(c.Request.Context(), id, &body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Archive soft-deletes: the lead stays in the store with archived=true.
func (h *LeadHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, roleID := getUserAndRole(c)

	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if lead.OwnerID != userID && !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.Service.Archive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LeadHandler) List(c *gin.Context) {
	var filter models.LeadFilter
	if s := c.Query("status"); s != "" {
		status := models.LeadStatus(s)
		filter.Status = &status
	}
	if v := c.Query("is_client"); v != "" {
		isClient := v == "true"
		filter.IsClient = &isClient
	}
	// archived leads are hidden unless asked for
	archived := c.Query("archived") == "true"
	filter.Archived = &archived

	userID, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) && roleID != authz.RoleAudit {
		filter.OwnerID = &userID
	} else if v := c.Query("owner_id"); v != "" {
		if ownerID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.OwnerID = &ownerID
		}
	}

	leads, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status models.LeadStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) ConvertToClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lead, err := h.Service.ConvertToClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.RecordClientConverted()
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) ConvertToDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var draft services.DealDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// When no customer is named, match or create one from the lead's
	// contact details before converting.
	if draft.CustomerID == 0 {
		lead, err := h.Service.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		customer, err := h.Customers.MatchOrCreateFromLead(c.Request.Context(), lead)
		if err != nil {
			respondError(c, err)
			return
		}
		draft.CustomerID = customer.ID
	}

	deal, err := h.Service.ConvertToDeal(c.Request.Context(), id, draft)
	if err != nil {
		if services.IsConsistency(err) {
			// the deal exists; only the lead status patch needs a retry
			middleware.RecordLeadConverted()
			c.JSON(http.StatusCreated, gin.H{"deal": deal, "warning": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	middleware.RecordLeadConverted()
	c.JSON(http.StatusCreated, deal)
}
