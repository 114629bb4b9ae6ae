package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clientdesk/internal/models"
)

func newTaskFixture() (TaskService, *mockTaskRepo, *recorderStub) {
	repo := new(mockTaskRepo)
	recorder := &recorderStub{}
	return NewTaskService(repo, recorder), repo, recorder
}

func TestTaskCreate_Defaults(t *testing.T) {
	svc, repo, _ := newTaskFixture()
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Task")).Return(nil)

	task, err := svc.Create(context.Background(), &models.Task{Title: "Call back"})

	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

func TestTaskCreate_RequiresTitle(t *testing.T) {
	svc, _, _ := newTaskFixture()

	_, err := svc.Create(context.Background(), &models.Task{Title: "   "})

	assert.True(t, IsValidation(err))
}

func TestTaskCreate_CustomLabelOnlyForCustomAction(t *testing.T) {
	svc, repo, _ := newTaskFixture()
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Task")).Return(nil)

	action := models.ActionCall
	label := "site survey"
	task, err := svc.Create(context.Background(), &models.Task{Title: "Visit", ActionType: &action, CustomActionType: &label})

	assert.NoError(t, err)
	assert.Nil(t, task.CustomActionType, "non-custom action drops the label")
}

func TestTaskUpdateStatus_CompletedRecordsActivity(t *testing.T) {
	svc, repo, recorder := newTaskFixture()
	repo.On("FindByID", mock.Anything, int64(4)).Return(&models.Task{ID: 4, Title: "Call back", Status: models.TaskStatusInProgress}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(4), models.TaskStatusCompleted).Return(nil)

	task, err := svc.UpdateStatus(context.Background(), 4, models.TaskStatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	assert.Equal(t, []string{"task_completed"}, recorder.types())
}

func TestToggleComplete_CompletesOpenTask(t *testing.T) {
	svc, repo, _ := newTaskFixture()
	repo.On("FindByID", mock.Anything, int64(4)).Return(&models.Task{ID: 4, Title: "Call back", Status: models.TaskStatusInProgress}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(4), models.TaskStatusCompleted).Return(nil)

	task, err := svc.ToggleComplete(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
}

func TestToggleComplete_ReopensCompletedTask(t *testing.T) {
	svc, repo, recorder := newTaskFixture()
	repo.On("FindByID", mock.Anything, int64(4)).Return(&models.Task{ID: 4, Title: "Call back", Status: models.TaskStatusCompleted}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(4), models.TaskStatusTodo).Return(nil)

	task, err := svc.ToggleComplete(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Empty(t, recorder.entries, "reopening is not a completion event")
}

func TestToggleComplete_NotFound(t *testing.T) {
	svc, repo, _ := newTaskFixture()
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.ToggleComplete(context.Background(), 99)

	assert.True(t, IsNotFound(err))
}
