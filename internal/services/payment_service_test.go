package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clientdesk/internal/models"
)

type receiptStub struct {
	url string
	err error
}

func (r *receiptStub) Render(_ *models.Payment, _ *models.Customer) (string, error) {
	return r.url, r.err
}

func newPaymentFixture(receipts ReceiptRenderer) (*PaymentService, *mockPaymentRepo, *mockCustomerRepo, *recorderStub) {
	repo := new(mockPaymentRepo)
	customers := new(mockCustomerRepo)
	recorder := &recorderStub{}
	return NewPaymentService(repo, customers, recorder, receipts), repo, customers, recorder
}

func TestPaymentCreate_NegativeAmountRejected(t *testing.T) {
	svc, repo, _, _ := newPaymentFixture(nil)

	err := svc.Create(context.Background(), &models.Payment{Amount: -10, CustomerID: 5})

	assert.True(t, IsValidation(err))
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestPaymentCreate_UnknownStatusRejected(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(nil)

	err := svc.Create(context.Background(), &models.Payment{Amount: 10, Status: "declined", CustomerID: 5})

	assert.True(t, IsValidation(err))
}

func TestPaymentCreate_UnknownCustomer(t *testing.T) {
	svc, repo, customers, _ := newPaymentFixture(nil)
	customers.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	err := svc.Create(context.Background(), &models.Payment{Amount: 10, CustomerID: 42})

	assert.True(t, IsNotFound(err))
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestPaymentCreate_DefaultsToPendingAndRecordsActivity(t *testing.T) {
	svc, repo, customers, recorder := newPaymentFixture(nil)
	customers.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5, Name: "Acme Corp"}, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(nil)

	payment := &models.Payment{Amount: 120, CustomerID: 5}
	err := svc.Create(context.Background(), payment)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Equal(t, []string{"payment_recorded"}, recorder.types())
}

func TestPaymentCreate_PaidRendersReceipt(t *testing.T) {
	svc, repo, customers, _ := newPaymentFixture(&receiptStub{url: "/files/receipt_abc.pdf"})
	customers.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5, Name: "Acme Corp"}, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(nil)

	payment := &models.Payment{Amount: 120, Status: models.PaymentPaid, CustomerID: 5}
	err := svc.Create(context.Background(), payment)

	assert.NoError(t, err)
	assert.Equal(t, "/files/receipt_abc.pdf", payment.ReceiptURL)
}

func TestPaymentCreate_ReceiptFailureDoesNotBlockPayment(t *testing.T) {
	svc, repo, customers, recorder := newPaymentFixture(&receiptStub{err: errors.New("disk full")})
	customers.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5, Name: "Acme Corp"}, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(nil)

	payment := &models.Payment{Amount: 120, Status: models.PaymentPaid, CustomerID: 5}
	err := svc.Create(context.Background(), payment)

	assert.NoError(t, err)
	assert.Empty(t, payment.ReceiptURL)
	assert.Equal(t, []string{"payment_recorded"}, recorder.types())
	repo.AssertExpectations(t)
}

func TestPaymentCreate_PendingSkipsReceipt(t *testing.T) {
	svc, repo, customers, _ := newPaymentFixture(&receiptStub{url: "/files/receipt_abc.pdf"})
	customers.On("FindByID", mock.Anything, int64(5)).Return(&models.Customer{ID: 5, Name: "Acme Corp"}, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(nil)

	payment := &models.Payment{Amount: 120, Status: models.PaymentPending, CustomerID: 5}
	err := svc.Create(context.Background(), payment)

	assert.NoError(t, err)
	assert.Empty(t, payment.ReceiptURL)
}
