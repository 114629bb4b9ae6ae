package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clientdesk/internal/models"
)

type mockLeadRepo struct{ mock.Mock }

func (m *mockLeadRepo) Store(ctx context.Context, lead *models.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *mockLeadRepo) FindByID(ctx context.Context, id int64) (*models.Lead, error) {
	args := m.Called(ctx, id)
	lead, _ := args.Get(0).(*models.Lead)
	return lead, args.Error(1)
}

func (m *mockLeadRepo) FindAll(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	args := m.Called(ctx, filter)
	leads, _ := args.Get(0).([]models.Lead)
	return leads, args.Error(1)
}

func (m *mockLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *mockLeadRepo) UpdateStatus(ctx context.Context, id int64, to models.LeadStatus) error {
	return m.Called(ctx, id, to).Error(0)
}

func (m *mockLeadRepo) Archive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockDealRepo struct{ mock.Mock }

func (m *mockDealRepo) Store(ctx context.Context, deal *models.Deal) error {
	return m.Called(ctx, deal).Error(0)
}

func (m *mockDealRepo) FindByID(ctx context.Context, id int64) (*models.Deal, error) {
	args := m.Called(ctx, id)
	deal, _ := args.Get(0).(*models.Deal)
	return deal, args.Error(1)
}

func (m *mockDealRepo) FindAll(ctx context.Context, filter models.DealFilter) ([]models.Deal, error) {
	args := m.Called(ctx, filter)
	deals, _ := args.Get(0).([]models.Deal)
	return deals, args.Error(1)
}

func (m *mockDealRepo) Update(ctx context.Context, deal *models.Deal) error {
	return m.Called(ctx, deal).Error(0)
}

func (m *mockDealRepo) UpdateStage(ctx context.Context, id int64, to models.DealStage) error {
	return m.Called(ctx, id, to).Error(0)
}

func (m *mockDealRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Store(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]models.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

type mockPipelineRepo struct{ mock.Mock }

func (m *mockPipelineRepo) Store(ctx context.Context, pipeline *models.Pipeline) error {
	return m.Called(ctx, pipeline).Error(0)
}

func (m *mockPipelineRepo) FindByID(ctx context.Context, id int64) (*models.Pipeline, error) {
	args := m.Called(ctx, id)
	pipeline, _ := args.Get(0).(*models.Pipeline)
	return pipeline, args.Error(1)
}

func (m *mockPipelineRepo) FindAll(ctx context.Context) ([]models.Pipeline, error) {
	args := m.Called(ctx)
	pipelines, _ := args.Get(0).([]models.Pipeline)
	return pipelines, args.Error(1)
}

type mockTaskRepo struct{ mock.Mock }

func (m *mockTaskRepo) Store(ctx context.Context, task *models.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *mockTaskRepo) FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	args := m.Called(ctx, filter)
	tasks, _ := args.Get(0).([]models.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskRepo) Update(ctx context.Context, task *models.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTaskRepo) UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error {
	return m.Called(ctx, id, to).Error(0)
}

func (m *mockTaskRepo) UpdateAssignee(ctx context.Context, id int64, assigneeID int64) error {
	return m.Called(ctx, id, assigneeID).Error(0)
}

func (m *mockTaskRepo) ListDueForReminder(ctx context.Context, limit int) ([]models.Task, error) {
	args := m.Called(ctx, limit)
	tasks, _ := args.Get(0).([]models.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskRepo) SetReminderFired(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// recorderStub collects recorded activities in memory.
type recorderStub struct {
	entries []models.Activity
}

func (r *recorderStub) Record(_ context.Context, activity models.Activity) {
	r.entries = append(r.entries, activity)
}

func (r *recorderStub) types() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.ActivityType)
	}
	return out
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Store(ctx context.Context, appt *models.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id int64) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, filter)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Store(ctx context.Context, payment *models.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	args := m.Called(ctx, id)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	args := m.Called(ctx, filter)
	payments, _ := args.Get(0).([]models.Payment)
	return payments, args.Error(1)
}
