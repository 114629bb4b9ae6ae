package models

import "time"

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment is a money record against a customer, optionally tied to a deal.
// Only payments with status paid count toward revenue.
type Payment struct {
	ID          int64         `json:"id"`
	Amount      float64       `json:"amount"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	CustomerID  int64         `json:"customer_id"`
	DealID      *int64        `json:"deal_id,omitempty"`
	Description string        `json:"description"`
	ReceiptURL  string        `json:"receipt_url"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PaymentFilter defines the available parameters for filtering payments.
type PaymentFilter struct {
	Status     *PaymentStatus
	CustomerID *int64
	From       *time.Time
	To         *time.Time
}
