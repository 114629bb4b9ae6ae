package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"clientdesk/internal/models"
)

type AppointmentRepository interface {
	Store(ctx context.Context, appt *models.Appointment) error
	FindByID(ctx context.Context, id int64) (*models.Appointment, error)
	FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
}

type appointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const apptColumns = `id, title, start_time, end_time, location, description,
       customer_id, lead_id, deal_id, created_at, updated_at`

func (r *appointmentRepository) Store(ctx context.Context, a *models.Appointment) error {
	const query = `
		INSERT INTO appointments (title, start_time, end_time, location, description,
		                          customer_id, lead_id, deal_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.Title, a.StartTime, a.EndTime, a.Location, a.Description,
		a.CustomerID, a.LeadID, a.DealID, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*models.Appointment, error) {
	a := &models.Appointment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+apptColumns+` FROM appointments WHERE id=$1`, id).Scan(
		&a.ID, &a.Title, &a.StartTime, &a.EndTime, &a.Location, &a.Description,
		&a.CustomerID, &a.LeadID, &a.DealID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment by id: %w", err)
	}
	return a, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	query := `SELECT ` + apptColumns + ` FROM appointments WHERE 1=1`
	args := []interface{}{}
	i := 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND start_time >= $%d", i)
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND start_time < $%d", i)
		args = append(args, *filter.To)
		i++
	}
	if filter.LeadID != nil {
		query += fmt.Sprintf(" AND lead_id = $%d", i)
		args = append(args, *filter.LeadID)
		i++
	}
	query += " ORDER BY start_time"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.Title, &a.StartTime, &a.EndTime, &a.Location,
			&a.Description, &a.CustomerID, &a.LeadID, &a.DealID,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *appointmentRepository) Update(ctx context.Context, a *models.Appointment) error {
	const query = `
		UPDATE appointments
		SET title=$1, start_time=$2, end_time=$3, location=$4, description=$5,
		    customer_id=$6, lead_id=$7, deal_id=$8, updated_at=$9
		WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		a.Title, a.StartTime, a.EndTime, a.Location, a.Description,
		a.CustomerID, a.LeadID, a.DealID, a.UpdatedAt, a.ID)
	return err
}
