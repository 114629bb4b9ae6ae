package models

import "time"

// Appointment is a scheduled meeting. StartTime must precede EndTime; an
// appointment spanning midnight belongs to the calendar day of StartTime.
type Appointment struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	CustomerID  *int64     `json:"customer_id,omitempty"`
	LeadID      *int64     `json:"lead_id,omitempty"`
	DealID      *int64     `json:"deal_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AppointmentFilter defines the available parameters for filtering
// appointments.
type AppointmentFilter struct {
	From   *time.Time
	To     *time.Time
	LeadID *int64
}
