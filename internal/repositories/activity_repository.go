package repositories

import (
	"context"
	"database/sql"

	"clientdesk/internal/models"
)

// ActivityRepository is append-only: entries are never updated or deleted.
type ActivityRepository interface {
	Store(ctx context.Context, activity *models.Activity) error
	ListRecent(ctx context.Context, limit int) ([]models.Activity, error)
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Store(ctx context.Context, a *models.Activity) error {
	const query = `
		INSERT INTO activities (activity_type, description, lead_id, deal_id, customer_id, task_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.ActivityType, a.Description, a.LeadID, a.DealID, a.CustomerID, a.TaskID, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]models.Activity, error) {
	const query = `
		SELECT id, activity_type, description, lead_id, deal_id, customer_id, task_id, created_at
		FROM activities
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.ActivityType, &a.Description, &a.LeadID,
			&a.DealID, &a.CustomerID, &a.TaskID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
