package repositories

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"clientdesk/internal/models"
)

type PreferenceRepository interface {
	Get(ctx context.Context, userID int64) (*models.UserPreferences, error)
	Put(ctx context.Context, prefs *models.UserPreferences) error
}

type preferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, userID int64) (*models.UserPreferences, error) {
	p := &models.UserPreferences{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT custom_action_types, updated_at FROM user_preferences WHERE user_id=$1`,
		userID).Scan(pq.Array(&p.CustomActionTypes), &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *preferenceRepository) Put(ctx context.Context, prefs *models.UserPreferences) error {
	const query = `
		INSERT INTO user_preferences (user_id, custom_action_types, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id) DO UPDATE
		SET custom_action_types = EXCLUDED.custom_action_types,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		prefs.UserID, pq.Array(prefs.CustomActionTypes), prefs.UpdatedAt)
	return err
}
