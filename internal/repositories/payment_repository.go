package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"clientdesk/internal/models"
)

type PaymentRepository interface {
	Store(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id int64) (*models.Payment, error)
	FindAll(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, amount, method, status, customer_id, deal_id, description, receipt_url, created_at`

func (r *paymentRepository) Store(ctx context.Context, p *models.Payment) error {
	const query = `
		INSERT INTO payments (amount, method, status, customer_id, deal_id, description, receipt_url, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.Amount, p.Method, p.Status, p.CustomerID, p.DealID, p.Description,
		p.ReceiptURL, p.CreatedAt,
	).Scan(&p.ID)
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	p := &models.Payment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id).Scan(
		&p.ID, &p.Amount, &p.Method, &p.Status, &p.CustomerID, &p.DealID,
		&p.Description, &p.ReceiptURL, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find payment by id: %w", err)
	}
	return p, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []interface{}{}
	i := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, *filter.Status)
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
		query += fmt.Sprintf(" AND created_at < $%d", i)
		args = append(args, *filter.To)
		i++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.Amount, &p.Method, &p.Status, &p.CustomerID,
			&p.DealID, &p.Description, &p.ReceiptURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
