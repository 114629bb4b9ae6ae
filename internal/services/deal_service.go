package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

type DealService struct {
	Repo      repositories.DealRepository
	Customers repositories.CustomerRepository
	Activity  ActivityRecorder
}

func NewDealService(repo repositories.DealRepository, customers repositories.CustomerRepository, activity ActivityRecorder) *DealService {
	return &DealService{Repo: repo, Customers: customers, Activity: activity}
}

func validateDeal(deal *models.Deal) error {
	if strings.TrimSpace(deal.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if deal.Value < 0 {
		return &ValidationError{Field: "value", Message: "must not be negative"}
	}
	if deal.Stage == "" {
		deal.Stage = models.StagePlanning
	}
	if !DealStages[deal.Stage] {
		return &ValidationError{Field: "stage", Message: fmt.Sprintf("unknown value %q", deal.Stage)}
	}
	if deal.StartDate != nil && deal.EndDate != nil && deal.StartDate.After(*deal.EndDate) {
		return &ValidationError{Field: "start_date", Message: "must not be after end_date"}
	}
	return nil
}

func (s *DealService) Create(ctx context.Context, deal *models.Deal) error {
	if err := validateDeal(deal); err != nil {
		return err
	}
	customer, err := s.Customers.FindByID(ctx, deal.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return &NotFoundError{Entity: "customer", ID: deal.CustomerID}
	}
	now := time.Now()
	deal.CreatedAt = now
	deal.UpdatedAt = now
	if err := s.Repo.Store(ctx, deal); err != nil {
		return err
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "deal_created",
		Description:  fmt.Sprintf("deal %q created", deal.Title),
		DealID:       &deal.ID,
		CustomerID:   &deal.CustomerID,
	})
	return nil
}

func (s *DealService) Update(ctx context.Context, id int64, deal *models.Deal) (*models.Deal, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "deal", ID: id}
	}
	if err := validateDeal(deal); err != nil {
		return nil, err
	}
	deal.ID = id
	deal.CreatedAt = existing.CreatedAt
	deal.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DealService) GetByID(ctx context.Context, id int64) (*models.Deal, error) {
	deal, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, &NotFoundError{Entity: "deal", ID: id}
	}
	return deal, nil
}

func (s *DealService) List(ctx context.Context, filter models.DealFilter) ([]models.Deal, error) {
	return s.Repo.FindAll(ctx, filter)
}

func (s *DealService) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: "deal", ID: id}
	}
	return err
}

// UpdateStage moves a deal to any stage; column order on the board is a UI
// convenience, not a rule, and completed deals are not locked.
func (s *DealService) UpdateStage(ctx context.Context, id int64, to models.DealStage) (*models.Deal, error) {
	if !DealStages[to] {
		return nil, &ValidationError{Field: "stage", Message: fmt.Sprintf("unknown value %q", to)}
	}
	deal, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, &NotFoundError{Entity: "deal", ID: id}
	}
	if err := s.Repo.UpdateStage(ctx, id, to); err != nil {
		return nil, err
	}
	deal.Stage = to

	activityType := "deal_stage_changed"
	if to == models.StageCompleted {
		activityType = "deal_completed"
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: activityType,
		Description:  fmt.Sprintf("deal %q moved to %s", deal.Title, to),
		DealID:       &deal.ID,
		CustomerID:   &deal.CustomerID,
	})
	return deal, nil
}
