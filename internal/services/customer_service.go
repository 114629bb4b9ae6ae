package services

import (
	"context"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

type CustomerService struct {
	Repo repositories.CustomerRepository
}

func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	return s.Repo.Store(ctx, customer)
}

func (s *CustomerService) Update(ctx context.Context, id int64, customer *models.Customer) (*models.Customer, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "customer", ID: id}
	}
	customer.ID = id
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "customer", ID: id}
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.FindAll(ctx)
}

// Match resolves a lead's name/email to an existing customer. Email wins over
// name, comparisons are case-insensitive, and the first match in list order
// is the answer. Returns nil when nothing matches.
func (s *CustomerService) Match(ctx context.Context, name, email string) (*models.Customer, error) {
	customers, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if email != "" {
		for i := range customers {
			if strings.EqualFold(customers[i].Email, email) {
				return &customers[i], nil
			}
		}
	}
	if name != "" {
		for i := range customers {
			if strings.EqualFold(customers[i].Name, name) {
				return &customers[i], nil
			}
		}
	}
	return nil, nil
}

// MatchOrCreateFromLead returns the customer a lead maps onto, creating one
// from the lead's contact fields when no match exists.
func (s *CustomerService) MatchOrCreateFromLead(ctx context.Context, lead *models.Lead) (*models.Customer, error) {
	existing, err := s.Match(ctx, lead.Name, lead.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	customer := &models.Customer{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Address: lead.Address,
		Company: lead.Company,
	}
	if err := s.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
