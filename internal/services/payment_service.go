package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

// ReceiptRenderer writes a receipt document and returns its public path.
type ReceiptRenderer interface {
	Render(payment *models.Payment, customer *models.Customer) (string, error)
}

type PaymentService struct {
	Repo      repositories.PaymentRepository
	Customers repositories.CustomerRepository
	Activity  ActivityRecorder
	Receipts  ReceiptRenderer
}

func NewPaymentService(
	repo repositories.PaymentRepository,
	customers repositories.CustomerRepository,
	activity ActivityRecorder,
	receipts ReceiptRenderer,
) *PaymentService {
	return &PaymentService{Repo: repo, Customers: customers, Activity: activity, Receipts: receipts}
}

func (s *PaymentService) Create(ctx context.Context, payment *models.Payment) error {
	if payment.Amount < 0 {
		return &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	if !PaymentStatuses[payment.Status] {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown value %q", payment.Status)}
	}
	customer, err := s.Customers.FindByID(ctx, payment.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return &NotFoundError{Entity: "customer", ID: payment.CustomerID}
	}
	payment.CreatedAt = time.Now()

	// A receipt failure must not block the payment record.
	if payment.Status == models.PaymentPaid && s.Receipts != nil {
		url, err := s.Receipts.Render(payment, customer)
		if err != nil {
			log.Printf("[payment] receipt render: %v", err)
		} else {
			payment.ReceiptURL = url
		}
	}

	if err := s.Repo.Store(ctx, payment); err != nil {
		return err
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "payment_recorded",
		Description:  fmt.Sprintf("payment of %.2f (%s) recorded", payment.Amount, payment.Status),
		CustomerID:   &payment.CustomerID,
		DealID:       payment.DealID,
	})
	return nil
}

func (s *PaymentService) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, &NotFoundError{Entity: "payment", ID: id}
	}
	return payment, nil
}

func (s *PaymentService) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	return s.Repo.FindAll(ctx, filter)
}
