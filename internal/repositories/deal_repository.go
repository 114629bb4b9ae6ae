package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"clientdesk/internal/models"
)

type DealRepository interface {
	Store(ctx context.Context, deal *models.Deal) error
	FindByID(ctx context.Context, id int64) (*models.Deal, error)
	FindAll(ctx context.Context, filter models.DealFilter) ([]models.Deal, error)
	Update(ctx context.Context, deal *models.Deal) error
	UpdateStage(ctx context.Context, id int64, to models.DealStage) error
	Delete(ctx context.Context, id int64) error
}

type dealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) DealRepository {
	return &dealRepository{db: db}
}

const dealColumns = `id, title, value, stage, customer_id, description, start_date, end_date, created_at, updated_at`

func (r *dealRepository) Store(ctx context.Context, deal *models.Deal) error {
	const query = `
		INSERT INTO deals (title, value, stage, customer_id, description, start_date, end_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		deal.Title, deal.Value, deal.Stage, deal.CustomerID, deal.Description,
		deal.StartDate, deal.EndDate, deal.CreatedAt, deal.UpdatedAt,
	).Scan(&deal.ID)
}

func (r *dealRepository) FindByID(ctx context.Context, id int64) (*models.Deal, error) {
	deal := &models.Deal{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+dealColumns+` FROM deals WHERE id=$1`, id).Scan(
		&deal.ID, &deal.Title, &deal.Value, &deal.Stage, &deal.CustomerID,
		&deal.Description, &deal.StartDate, &deal.EndDate, &deal.CreatedAt, &deal.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find deal by id: %w", err)
	}
	return deal, nil
}

func (r *dealRepository) FindAll(ctx context.Context, filter models.DealFilter) ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE 1=1`
	args := []interface{}{}
	i := 1

	if filter.Stage != nil {
		query += fmt.Sprintf(" AND stage = $%d", i)
		args = append(args, *filter.Stage)
		i++
	}
	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", i)
		args = append(args, *filter.CustomerID)
		i++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", i)
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", i)
		args = append(args, *filter.To)
		i++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Deal
	for rows.Next() {
		var d models.Deal
		if err := rows.Scan(&d.ID, &d.Title, &d.Value, &d.Stage, &d.CustomerID,
			&d.Description, &d.StartDate, &d.EndDate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *dealRepository) Update(ctx context.Context, deal *models.Deal) error {
	const query = `
		UPDATE deals
		SET title=$1, value=$2, stage=$3, customer_id=$4, description=$5,
		    start_date=$6, end_date=$7, updated_at=$8
		WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		deal.Title, deal.Value, deal.Stage, deal.CustomerID, deal.Description,
		deal.StartDate, deal.EndDate, deal.UpdatedAt, deal.ID)
	return err
}

func (r *dealRepository) UpdateStage(ctx context.Context, id int64, to models.DealStage) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE deals SET stage=$1, updated_at=NOW() WHERE id=$2`, to, id)
	return err
}

func (r *dealRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
