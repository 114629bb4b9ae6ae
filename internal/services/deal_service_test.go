package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clientdesk/internal/models"
)

func newDealFixture() (*DealService, *mockDealRepo, *mockCustomerRepo, *recorderStub) {
	repo := new(mockDealRepo)
	customers := new(mockCustomerRepo)
	recorder := &recorderStub{}
	return NewDealService(repo, customers, recorder), repo, customers, recorder
}

func TestDealCreate_StartDateAfterEndDateRejected(t *testing.T) {
	svc, repo, _, _ := newDealFixture()

	end := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, 7)
	err := svc.Create(context.Background(), &models.Deal{Title: "Install", CustomerID: 5, StartDate: &start, EndDate: &end})

	assert.True(t, IsValidation(err))
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestDealCreate_NegativeValueRejected(t *testing.T) {
	svc, repo, _, _ := newDealFixture()

	err := svc.Create(context.Background(), &models.Deal{Title: "Install", Value: -100, CustomerID: 5})

	assert.True(t, IsValidation(err))
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestDealCreate_DefaultsStageToPlanning(t *testing.T) {
	svc, repo, customers, recorder := newDealFixture()
	customers.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5, Name: "Acme Corp"}, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Deal")).Return(nil)

	deal := &models.Deal{Title: "Install", Value: 900, CustomerID: 5}
	err := svc.Create(context.Background(), deal)

	assert.NoError(t, err)
	assert.Equal(t, models.StagePlanning, deal.Stage)
	assert.Equal(t, []string{"deal_created"}, recorder.types())
}

func TestDealUpdateStage_RecordsStageChanged(t *testing.T) {
	svc, repo, _, recorder := newDealFixture()
	repo.On("FindByID", mock.Anything, int64(3)).Return(&models.Deal{ID: 3, Title: "Install", Stage: models.StagePlanning, CustomerID: 5}, nil)
	repo.On("UpdateStage", mock.Anything, int64(3), models.StageReview).Return(nil)

	deal, err := svc.UpdateStage(context.Background(), 3, models.StageReview)

	assert.NoError(t, err)
	assert.Equal(t, models.StageReview, deal.Stage)
	assert.Equal(t, []string{"deal_stage_changed"}, recorder.types())
}

func TestDealUpdateStage_CompletedRecordsDealCompleted(t *testing.T) {
	svc, repo, _, recorder := newDealFixture()
	repo.On("FindByID", mock.Anything, int64(3)).Return(&models.Deal{ID: 3, Title: "Install", Stage: models.StageReview, CustomerID: 5}, nil)
	repo.On("UpdateStage", mock.Anything, int64(3), models.StageCompleted).Return(nil)

	deal, err := svc.UpdateStage(context.Background(), 3, models.StageCompleted)

	assert.NoError(t, err)
	assert.Equal(t, models.StageCompleted, deal.Stage)
	assert.Equal(t, []string{"deal_completed"}, recorder.types())
}

func TestDealUpdateStage_CompletedIsNotTerminal(t *testing.T) {
	svc, repo, _, recorder := newDealFixture()
	repo.On("FindByID", mock.Anything, int64(3)).Return(&models.Deal{ID: 3, Title: "Install", Stage: models.StageCompleted, CustomerID: 5}, nil)
	repo.On("UpdateStage", mock.Anything, int64(3), models.StagePlanning).Return(nil)

	deal, err := svc.UpdateStage(context.Background(), 3, models.StagePlanning)

	assert.NoError(t, err)
	assert.Equal(t, models.StagePlanning, deal.Stage)
	assert.Equal(t, []string{"deal_stage_changed"}, recorder.types())
}

func TestDealUpdateStage_UnknownStageRejected(t *testing.T) {
	svc, repo, _, _ := newDealFixture()

	_, err := svc.UpdateStage(context.Background(), 3, "cancelled")

	assert.True(t, IsValidation(err))
	repo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything)
}

func TestDealUpdateStage_NotFound(t *testing.T) {
	svc, repo, _, _ := newDealFixture()
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.UpdateStage(context.Background(), 99, models.StageReview)

	assert.True(t, IsNotFound(err))
}
