package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
	"clientdesk/internal/services"
)

type TaskHandler struct {
	service services.TaskService
	tg      *services.TelegramService
	users   repositories.UserRepository
}

func NewTaskHandler(service services.TaskService, tg *services.TelegramService, users repositories.UserRepository) *TaskHandler {
	return &TaskHandler{service: service, tg: tg, users: users}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.Create(c.Request.Context(), &task)
	if err != nil {
		respondError(c, err)
		return
	}
	h.notifyAssignee(c, created)
	c.JSON(http.StatusCreated, created)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) GetAll(c *gin.Context) {
	var filter models.TaskFilter
	if v := c.Query("assignee_id"); v != "" {
		if assigneeID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.AssigneeID = &assigneeID
		}
	}
	if v := c.Query("status"); v != "" {
		status := models.TaskStatus(v)
		filter.Status = &status
	}
	if v := c.Query("lead_id"); v != "" {
		if leadID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.RelatedLeadID = &leadID
		}
	}
	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body models.Task
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, &body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status models.TaskStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.service.ToggleComplete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Assign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		AssigneeID int64 `json:"assignee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.service.UpdateAssignee(c.Request.Context(), id, req.AssigneeID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.notifyAssignee(c, task)
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) notifyAssignee(c *gin.Context, task *models.Task) {
	if h.tg == nil || task.AssigneeID == nil {
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), *task.AssigneeID)
	if err != nil || user == nil || user.TelegramChatID == nil {
		return
	}
	h.tg.NotifyTaskAssigned(*user.TelegramChatID, *task)
}
