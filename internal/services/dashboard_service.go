package services

import (
	"context"
	"sort"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

// Summary is the dashboard header block.
type Summary struct {
	NewLeadsCount           int     `json:"new_leads_count"`
	ActiveDealsCount        int     `json:"active_deals_count"`
	TodaysAppointmentsCount int     `json:"todays_appointments_count"`
	MonthlyRevenue          float64 `json:"monthly_revenue"`
}

// Summarize derives the dashboard numbers from a full snapshot. Pure: no
// side effects, recomputed on every call.
//
// An appointment counts as "today" iff its StartTime falls on asOf's calendar
// day in asOf's location; one spanning midnight belongs to its start day.
// Revenue sums paid payments created within asOf's calendar month.
func Summarize(leads []models.Lead, deals []models.Deal, appointments []models.Appointment, payments []models.Payment, asOf time.Time) Summary {
	var sum Summary
	loc := asOf.Location()
	y, m, d := asOf.Date()

	for _, lead := range leads {
		if lead.Status == models.LeadStatusNew {
			sum.NewLeadsCount++
		}
	}
	for _, deal := range deals {
		if deal.Stage != models.StageCompleted {
			sum.ActiveDealsCount++
		}
	}
	for _, appt := range appointments {
		ay, am, ad := appt.StartTime.In(loc).Date()
		if ay == y && am == m && ad == d {
			sum.TodaysAppointmentsCount++
		}
	}
	for _, p := range payments {
		if p.Status != models.PaymentPaid {
			continue
		}
		py, pm, _ := p.CreatedAt.In(loc).Date()
		if py == y && pm == m {
			sum.MonthlyRevenue += p.Amount
		}
	}
	return sum
}

// GroupLeadsByStatus partitions leads into board columns, preserving input
// order within each column. Every known status gets an entry even when empty.
// A lead with an unrecognized or missing status lands in the new column
// rather than disappearing from the board.
func GroupLeadsByStatus(leads []models.Lead) map[models.LeadStatus][]models.Lead {
	groups := make(map[models.LeadStatus][]models.Lead, len(LeadStatuses))
	for status := range LeadStatuses {
		groups[status] = []models.Lead{}
	}
	for _, lead := range leads {
		status := lead.Status
		if !LeadStatuses[status] {
			status = models.LeadStatusNew
		}
		groups[status] = append(groups[status], lead)
	}
	return groups
}

// RecentActivity returns at most limit entries, newest first by CreatedAt
// with ties broken by id descending, so the feed order is total and
// deterministic.
func RecentActivity(activities []models.Activity, limit int) []models.Activity {
	out := make([]models.Activity, len(activities))
	copy(out, activities)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DashboardService feeds the pure aggregation functions with fresh snapshots.
type DashboardService struct {
	Leads        repositories.LeadRepository
	Deals        repositories.DealRepository
	Appointments repositories.AppointmentRepository
	Payments     repositories.PaymentRepository
	Activities   repositories.ActivityRepository
}

func NewDashboardService(
	leads repositories.LeadRepository,
	deals repositories.DealRepository,
	appointments repositories.AppointmentRepository,
	payments repositories.PaymentRepository,
	activities repositories.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		Leads:        leads,
		Deals:        deals,
		Appointments: appointments,
		Payments:     payments,
		Activities:   activities,
	}
}

// GetSummary computes the dashboard block as of now. Archived leads are not
// part of the snapshot.
func (s *DashboardService) GetSummary(ctx context.Context, asOf time.Time) (Summary, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	archived := false
	leads, err := s.Leads.FindAll(ctx, models.LeadFilter{Archived: &archived})
	if err != nil {
		return Summary{}, err
	}
	deals, err := s.Deals.FindAll(ctx, models.DealFilter{})
	if err != nil {
		return Summary{}, err
	}
	appointments, err := s.Appointments.FindAll(ctx, models.AppointmentFilter{})
	if err != nil {
		return Summary{}, err
	}
	payments, err := s.Payments.FindAll(ctx, models.PaymentFilter{})
	if err != nil {
		return Summary{}, err
	}
	return Summarize(leads, deals, appointments, payments, asOf), nil
}

// GetBoard returns the pipeline board: non-archived leads grouped by status.
func (s *DashboardService) GetBoard(ctx context.Context) (map[models.LeadStatus][]models.Lead, error) {
	archived := false
	leads, err := s.Leads.FindAll(ctx, models.LeadFilter{Archived: &archived})
	if err != nil {
		return nil, err
	}
	return GroupLeadsByStatus(leads), nil
}
