package models

import "time"

// LeadStatus defines the sales-funnel position of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusProposal  LeadStatus = "proposal"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusClient    LeadStatus = "client"
)

// DefaultKanbanLane is assigned when a lead becomes a client and its pipeline
// defines no lanes.
const DefaultKanbanLane = "new_client"

// Lead is a prospective customer moving through the funnel. Once converted
// (IsClient) it is tracked by kanban lane instead of sales status.
//
// Invariants, enforced by the lead service:
//   - KanbanLane is set only while IsClient is true
//   - Status == client implies IsClient == true
type Lead struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Company          string     `json:"company"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	Source           string     `json:"source"`
	Status           LeadStatus `json:"status"`
	Value            *float64   `json:"value,omitempty"`
	Notes            string     `json:"notes"`
	NextActivity     string     `json:"next_activity"`
	NextActivityDate *time.Time `json:"next_activity_date,omitempty"`
	IsClient         bool       `json:"is_client"`
	KanbanLane       *string    `json:"kanban_lane,omitempty"`
	PipelineID       *int64     `json:"pipeline_id,omitempty"`
	OwnerID          int64      `json:"owner_id"`
	Archived         bool       `json:"archived"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// LeadFilter defines the available parameters for filtering leads.
type LeadFilter struct {
	Status   *LeadStatus
	OwnerID  *int64
	IsClient *bool
	Archived *bool
}
