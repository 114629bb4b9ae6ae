package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

type LeadService struct {
	Repo      repositories.LeadRepository
	DealRepo  repositories.DealRepository
	Customers repositories.CustomerRepository
	Pipelines repositories.PipelineRepository
	Activity  ActivityRecorder
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	dealRepo repositories.DealRepository,
	customerRepo repositories.CustomerRepository,
	pipelineRepo repositories.PipelineRepository,
	activity ActivityRecorder,
) *LeadService {
	return &LeadService{
		Repo:      leadRepo,
		DealRepo:  dealRepo,
		Customers: customerRepo,
		Pipelines: pipelineRepo,
		Activity:  activity,
	}
}

func (s *LeadService) Create(ctx context.Context, lead *models.Lead) error {
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if err := s.normalize(ctx, lead); err != nil {
		return err
	}
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if err := s.Repo.Store(ctx, lead); err != nil {
		return err
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "lead_created",
		Description:  fmt.Sprintf("lead %q created", lead.Name),
		LeadID:       &lead.ID,
	})
	return nil
}

func (s *LeadService) Update(ctx context.Context, id int64, lead *models.Lead) (*models.Lead, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}
	if err := s.normalize(ctx, lead); err != nil {
		return nil, err
	}
	lead.ID = id
	lead.CreatedAt = existing.CreatedAt
	lead.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	return s.Repo.FindAll(ctx, filter)
}

// Archive soft-deletes: leads are never removed, only hidden.
func (s *LeadService) Archive(ctx context.Context, id int64) error {
	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return &NotFoundError{Entity: "lead", ID: id}
	}
	return s.Repo.Archive(ctx, id)
}

// UpdateStatus moves a lead to any status in the enum; the funnel has no
// forbidden transitions. Moving to client goes through the conversion path so
// the lane invariant holds.
func (s *LeadService) UpdateStatus(ctx context.Context, id int64, to models.LeadStatus) (*models.Lead, error) {
	if !LeadStatuses[to] {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown value %q", to)}
	}
	if to == models.LeadStatusClient {
		return s.ConvertToClient(ctx, id)
	}
	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}
	if err := s.Repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	lead.Status = to
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "lead_status_changed",
		Description:  fmt.Sprintf("lead %q moved to %s", lead.Name, to),
		LeadID:       &lead.ID,
	})
	return lead, nil
}

// ConvertToClient flips a lead into the client board. Idempotent: converting
// an already-converted lead returns its current state unchanged.
func (s *LeadService) ConvertToClient(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}
	if lead.IsClient {
		return lead, nil
	}
	lead.IsClient = true
	lead.Status = models.LeadStatusClient
	if lead.KanbanLane == nil {
		lane := s.defaultLane(ctx, lead)
		lead.KanbanLane = &lane
	}
	lead.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "client_created",
		Description:  fmt.Sprintf("lead %q became a client", lead.Name),
		LeadID:       &lead.ID,
	})
	return lead, nil
}

// DealDraft carries the caller-supplied fields for a lead-to-deal conversion.
type DealDraft struct {
	Title       string     `json:"title"`
	Value       float64    `json:"value"`
	CustomerID  int64      `json:"customer_id"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ConvertToDeal creates a deal from the draft and then marks the lead won.
// The two writes are independent: if the lead update fails the deal stays and
// the caller receives it together with a ConsistencyError, so only the lead
// half needs a compensating retry.
func (s *LeadService) ConvertToDeal(ctx context.Context, id int64, draft DealDraft) (*models.Deal, error) {
	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}
	customer, err := s.Customers.FindByID(ctx, draft.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "customer", ID: draft.CustomerID}
	}

	now := time.Now()
	deal := &models.Deal{
		Title:       draft.Title,
		Value:       draft.Value,
		Stage:       models.StagePlanning,
		CustomerID:  customer.ID,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateDeal(deal); err != nil {
		return nil, err
	}
	if err := s.DealRepo.Store(ctx, deal); err != nil {
		return nil, err
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "lead_converted",
		Description:  fmt.Sprintf("lead %q converted to deal %q", lead.Name, deal.Title),
		LeadID:       &lead.ID,
		DealID:       &deal.ID,
	})

	if err := s.Repo.UpdateStatus(ctx, id, models.LeadStatusWon); err != nil {
		return deal, &ConsistencyError{Op: "lead status update", Err: err}
	}
	return deal, nil
}

// normalize enforces the lead invariants before any write: a lead with
// status client is a client, a client always has a lane, and only clients
// have lanes.
func (s *LeadService) normalize(ctx context.Context, lead *models.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !LeadStatuses[lead.Status] {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown value %q", lead.Status)}
	}
	if lead.Value != nil && *lead.Value < 0 {
		return &ValidationError{Field: "value", Message: "must not be negative"}
	}
	if lead.Status == models.LeadStatusClient {
		lead.IsClient = true
	}
	if !lead.IsClient {
		lead.KanbanLane = nil
		return nil
	}
	if lead.KanbanLane == nil {
		lane := s.defaultLane(ctx, lead)
		lead.KanbanLane = &lane
	}
	return nil
}

// defaultLane is the first lane of the lead's pipeline, or the fixed fallback
// when the lead has no pipeline (or the pipeline is gone).
func (s *LeadService) defaultLane(ctx context.Context, lead *models.Lead) string {
	if lead.PipelineID != nil && s.Pipelines != nil {
		p, err := s.Pipelines.FindByID(ctx, *lead.PipelineID)
		if err == nil && p != nil && len(p.Lanes) > 0 {
			return p.Lanes[0]
		}
	}
	return models.DefaultKanbanLane
}
