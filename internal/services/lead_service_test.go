package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clientdesk/internal/models"
)

func newLeadFixture() (*LeadService, *mockLeadRepo, *mockDealRepo, *mockCustomerRepo, *mockPipelineRepo, *recorderStub) {
	leadRepo := new(mockLeadRepo)
	dealRepo := new(mockDealRepo)
	customerRepo := new(mockCustomerRepo)
	pipelineRepo := new(mockPipelineRepo)
	recorder := &recorderStub{}
	svc := NewLeadService(leadRepo, dealRepo, customerRepo, pipelineRepo, recorder)
	return svc, leadRepo, dealRepo, customerRepo, pipelineRepo, recorder
}

func TestLeadCreate_DefaultsStatusToNew(t *testing.T) {
	svc, leadRepo, _, _, _, recorder := newLeadFixture()
	leadRepo.On("Store", mock.Anything, mock.AnythingOfType("*models.Lead")).Return(nil)

	lead := &models.Lead{Name: "Acme Corp"}
	err := svc.Create(context.Background(), lead)

	assert.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, []string{"lead_created"}, recorder.types())
	leadRepo.AssertExpectations(t)
}

func TestLeadCreate_RejectsUnknownStatus(t *testing.T) {
	svc, leadRepo, _, _, _, _ := newLeadFixture()

	err := svc.Create(context.Background(), &models.Lead{Name: "Acme", Status: "bogus"})

	assert.True(t, IsValidation(err))
	leadRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestLeadCreate_RejectsNegativeValue(t *testing.T) {
	svc, _, _, _, _, _ := newLeadFixture()

	value := -50.0
	err := svc.Create(context.Background(), &models.Lead{Name: "Acme", Value: &value})

	assert.True(t, IsValidation(err))
}

func TestLeadCreate_StripsLaneFromNonClient(t *testing.T) {
	svc, leadRepo, _, _, _, _ := newLeadFixture()
	leadRepo.On("Store", mock.Anything, mock.AnythingOfType("*models.Lead")).Return(nil)

	lane := "onboarding"
	lead := &models.Lead{Name: "Acme", KanbanLane: &lane}
	err := svc.Create(context.Background(), lead)

	assert.NoError(t, err)
	assert.Nil(t, lead.KanbanLane)
}

func TestLeadUpdateStatus_AnyToAnyAllowed(t *testing.T) {
	svc, leadRepo, _, _, _, _ := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(7)).Return(&models.Lead{ID: 7, Name: "Acme", Status: models.LeadStatusLost}, nil)
	leadRepo.On("UpdateStatus", mock.Anything, int64(7), models.LeadStatusNew).Return(nil)

	lead, err := svc.UpdateStatus(context.Background(), 7, models.LeadStatusNew)

	assert.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
}

func TestLeadUpdateStatus_UnknownValueRejected(t *testing.T) {
	svc, _, _, _, _, _ := newLeadFixture()

	_, err := svc.UpdateStatus(context.Background(), 7, "archived")

	assert.True(t, IsValidation(err))
}

func TestLeadUpdateStatus_NotFound(t *testing.T) {
	svc, leadRepo, _, _, _, _ := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 99, models.LeadStatusContacted)

	assert.True(t, IsNotFound(err))
}

func TestConvertToClient_SetsFlagStatusAndLane(t *testing.T) {
	svc, leadRepo, _, _, _, recorder := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(&models.Lead{ID: 1, Name: "Acme", Status: models.LeadStatusWon}, nil)
	leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Lead")).Return(nil)

	lead, err := svc.ConvertToClient(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, lead.IsClient)
	assert.Equal(t, models.LeadStatusClient, lead.Status)
	if assert.NotNil(t, lead.KanbanLane) {
		assert.Equal(t, models.DefaultKanbanLane, *lead.KanbanLane)
	}
	assert.Equal(t, []string{"client_created"}, recorder.types())
}

func TestConvertToClient_UsesFirstPipelineLane(t *testing.T) {
	svc, leadRepo, _, _, pipelineRepo, _ := newLeadFixture()
	pipelineID := int64(3)
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(&models.Lead{ID: 1, Name: "Acme", PipelineID: &pipelineID}, nil)
	leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Lead")).Return(nil)
	pipelineRepo.On("FindByID", mock.Anything, pipelineID).Return(&models.Pipeline{ID: 3, Lanes: []string{"intake", "active"}}, nil)

	lead, err := svc.ConvertToClient(context.Background(), 1)

	assert.NoError(t, err)
	if assert.NotNil(t, lead.KanbanLane) {
		assert.Equal(t, "intake", *lead.KanbanLane)
	}
}

func TestConvertToClient_Idempotent(t *testing.T) {
	svc, leadRepo, _, _, _, recorder := newLeadFixture()
	lane := "active"
	already := &models.Lead{ID: 1, Name: "Acme", Status: models.LeadStatusClient, IsClient: true, KanbanLane: &lane}
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(already, nil)

	lead, err := svc.ConvertToClient(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "active", *lead.KanbanLane)
	assert.Empty(t, recorder.entries)
	leadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConvertToDeal_CreatesDealAndMarksWon(t *testing.T) {
	svc, leadRepo, dealRepo, customerRepo, _, recorder := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(&models.Lead{ID: 1, Name: "Acme", Status: models.LeadStatusProposal}, nil)
	customerRepo.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5, Name: "Acme Corp"}, nil)
	dealRepo.On("Store", mock.Anything, mock.AnythingOfType("*models.Deal")).Return(nil)
	leadRepo.On("UpdateStatus", mock.Anything, int64(1), models.LeadStatusWon).Return(nil)

	deal, err := svc.ConvertToDeal(context.Background(), 1, DealDraft{Title: "Install", Value: 1200, CustomerID: 5})

	assert.NoError(t, err)
	assert.Equal(t, models.StagePlanning, deal.Stage)
	assert.Equal(t, int64(5), deal.CustomerID)
	assert.Equal(t, []string{"lead_converted"}, recorder.types())
	leadRepo.AssertExpectations(t)
}

func TestConvertToDeal_LeadUpdateFailureKeepsDeal(t *testing.T) {
	svc, leadRepo, dealRepo, customerRepo, _, _ := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(&models.Lead{ID: 1, Name: "Acme"}, nil)
	customerRepo.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5}, nil)
	dealRepo.On("Store", mock.Anything, mock.AnythingOfType("*models.Deal")).Return(nil)
	leadRepo.On("UpdateStatus", mock.Anything, int64(1), models.LeadStatusWon).Return(errors.New("connection reset"))

	deal, err := svc.ConvertToDeal(context.Background(), 1, DealDraft{Title: "Install", Value: 1200, CustomerID: 5})

	assert.True(t, IsConsistency(err))
	assert.NotNil(t, deal, "the stored deal is returned alongside the error")
}

func TestConvertToDeal_UnknownCustomer(t *testing.T) {
	svc, leadRepo, dealRepo, customerRepo, _, _ := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(&models.Lead{ID: 1, Name: "Acme"}, nil)
	customerRepo.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	_, err := svc.ConvertToDeal(context.Background(), 1, DealDraft{Title: "Install", CustomerID: 42})

	assert.True(t, IsNotFound(err))
	dealRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestConvertToDeal_NegativeValueRejected(t *testing.T) {
	svc, leadRepo, dealRepo, customerRepo, _, _ := newLeadFixture()
	leadRepo.On("FindByID", mock.Anything, int64(1)).Return(&models.Lead{ID: 1, Name: "Acme"}, nil)
	customerRepo.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5}, nil)

	_, err := svc.ConvertToDeal(context.Background(), 1, DealDraft{Title: "Install", Value: -1, CustomerID: 5})

	assert.True(t, IsValidation(err))
	dealRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}
