package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"clientdesk/internal/models"
)

type PipelineRepository interface {
	Store(ctx context.Context, pipeline *models.Pipeline) error
	FindByID(ctx context.Context, id int64) (*models.Pipeline, error)
	FindAll(ctx context.Context) ([]models.Pipeline, error)
}

type pipelineRepository struct {
	db *sql.DB
}

func NewPipelineRepository(db *sql.DB) PipelineRepository {
	return &pipelineRepository{db: db}
}

func (r *pipelineRepository) Store(ctx context.Context, p *models.Pipeline) error {
	const query = `
		INSERT INTO pipelines (name, lanes, created_at, updated_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.Name, pq.Array(p.Lanes), p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *pipelineRepository) FindByID(ctx context.Context, id int64) (*models.Pipeline, error) {
	p := &models.Pipeline{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, lanes, created_at, updated_at FROM pipelines WHERE id=$1`, id).Scan(
		&p.ID, &p.Name, pq.Array(&p.Lanes), &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find pipeline by id: %w", err)
	}
	return p, nil
}

func (r *pipelineRepository) FindAll(ctx context.Context) ([]models.Pipeline, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, lanes, created_at, updated_at FROM pipelines ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Pipeline
	for rows.Next() {
		var p models.Pipeline
		if err := rows.Scan(&p.ID, &p.Name, pq.Array(&p.Lanes), &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
