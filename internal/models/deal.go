package models

import "time"

// DealStage defines the delivery stage of a deal. The stage order mirrors the
// board columns; it is not an enforced progression.
type DealStage string

const (
	StagePlanning     DealStage = "planning"
	StageInProgress   DealStage = "in_progress"
	StageInstallation DealStage = "installation"
	StageReview       DealStage = "review"
	StageCompleted    DealStage = "completed"
)

// Deal is a contracted engagement tied to a customer.
type Deal struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Value       float64    `json:"value"`
	Stage       DealStage  `json:"stage"`
	CustomerID  int64      `json:"customer_id"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DealFilter defines the available parameters for filtering deals.
type DealFilter struct {
	Stage      *DealStage
	CustomerID *int64
	From       *time.Time
	To         *time.Time
}
