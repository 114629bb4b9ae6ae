package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

type AppointmentService struct {
	Repo     repositories.AppointmentRepository
	Activity ActivityRecorder
}

func NewAppointmentService(repo repositories.AppointmentRepository, activity ActivityRecorder) *AppointmentService {
	return &AppointmentService{Repo: repo, Activity: activity}
}

func validateAppointment(a *models.Appointment) error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if a.StartTime.IsZero() || a.EndTime.IsZero() {
		return &ValidationError{Field: "start_time", Message: "start_time and end_time are required"}
	}
	if !a.StartTime.Before(a.EndTime) {
		return &ValidationError{Field: "start_time", Message: "must be before end_time"}
	}
	return nil
}

func (s *AppointmentService) Create(ctx context.Context, appt *models.Appointment) error {
	if err := validateAppointment(appt); err != nil {
		return err
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if err := s.Repo.Store(ctx, appt); err != nil {
		return err
	}
	s.Activity.Record(ctx, models.Activity{
		ActivityType: "appointment_scheduled",
		Description:  fmt.Sprintf("appointment %q scheduled for %s", appt.Title, appt.StartTime.Format(time.RFC3339)),
		LeadID:       appt.LeadID,
		DealID:       appt.DealID,
		CustomerID:   appt.CustomerID,
	})
	return nil
}

func (s *AppointmentService) Update(ctx context.Context, id int64, appt *models.Appointment) (*models.Appointment, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "appointment", ID: id}
	}
	if err := validateAppointment(appt); err != nil {
		return nil, err
	}
	appt.ID = id
	appt.CreatedAt = existing.CreatedAt
	appt.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	appt, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &NotFoundError{Entity: "appointment", ID: id}
	}
	return appt, nil
}

func (s *AppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return s.Repo.FindAll(ctx, filter)
}
