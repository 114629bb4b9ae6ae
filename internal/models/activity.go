package models

import "time"

// Activity is an append-only audit entry describing a state-changing event
// (lead_created, deal_completed, ...). Entries are never mutated or deleted.
type Activity struct {
	ID           int64     `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	LeadID       *int64    `json:"lead_id,omitempty"`
	DealID       *int64    `json:"deal_id,omitempty"`
	CustomerID   *int64    `json:"customer_id,omitempty"`
	TaskID       *int64    `json:"task_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
