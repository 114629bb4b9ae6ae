package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, id int64, updateData *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) (*models.Task, error)
	ToggleComplete(ctx context.Context, id int64) (*models.Task, error)
	UpdateAssignee(ctx context.Context, id int64, assigneeID int64) (*models.Task, error)
}

type taskService struct {
	repo     repositories.TaskRepository
	activity ActivityRecorder
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository, activity ActivityRecorder) TaskService {
	return &taskService{repo: repo, activity: activity}
}

func validateTask(task *models.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if !TaskStatuses[task.Status] {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown value %q", task.Status)}
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !TaskPriorities[task.Priority] {
		return &ValidationError{Field: "priority", Message: fmt.Sprintf("unknown value %q", task.Priority)}
	}
	if task.ActionType != nil {
		if !TaskActionTypes[*task.ActionType] {
			return &ValidationError{Field: "action_type", Message: fmt.Sprintf("unknown value %q", *task.ActionType)}
		}
		if *task.ActionType != models.ActionCustom {
			task.CustomActionType = nil
		}
	} else {
		task.CustomActionType = nil
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, models.Activity{
		ActivityType: "task_created",
		Description:  fmt.Sprintf("task %q created", task.Title),
		TaskID:       &task.ID,
		LeadID:       task.RelatedLeadID,
		DealID:       task.RelatedDealID,
	})
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Entity: "task", ID: id}
	}
	return task, nil
}

func (s *taskService) GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *taskService) Update(ctx context.Context, id int64, updateData *models.Task) (*models.Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "task", ID: id}
	}
	if err := validateTask(updateData); err != nil {
		return nil, err
	}
	updateData.ID = id
	updateData.CreatedAt = existing.CreatedAt
	updateData.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, updateData); err != nil {
		return nil, err
	}
	return updateData, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Entity: "task", ID: id}
	}
	return s.repo.Delete(ctx, id)
}

func (s *taskService) UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) (*models.Task, error) {
	if !TaskStatuses[to] {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown value %q", to)}
	}
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Entity: "task", ID: id}
	}
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	task.Status = to
	if to == models.TaskStatusCompleted {
		s.activity.Record(ctx, models.Activity{
			ActivityType: "task_completed",
			Description:  fmt.Sprintf("task %q completed", task.Title),
			TaskID:       &task.ID,
		})
	}
	return task, nil
}

// ToggleComplete is the board shortcut: a completed task reopens as todo,
// anything else completes.
func (s *taskService) ToggleComplete(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Entity: "task", ID: id}
	}
	to := models.TaskStatusCompleted
	if task.Status == models.TaskStatusCompleted {
		to = models.TaskStatusTodo
	}
	return s.UpdateStatus(ctx, id, to)
}

func (s *taskService) UpdateAssignee(ctx context.Context, id int64, assigneeID int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Entity: "task", ID: id}
	}
	if err := s.repo.UpdateAssignee(ctx, id, assigneeID); err != nil {
		return nil, err
	}
	task.AssigneeID = &assigneeID
	return task, nil
}
