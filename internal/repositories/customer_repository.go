package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"clientdesk/internal/models"
)

type CustomerRepository interface {
	Store(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	FindAll(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
}

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Store(ctx context.Context, c *models.Customer) error {
	const query = `
		INSERT INTO customers (name, email, phone, address, company, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.Company, c.Notes, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	const query = `
		SELECT id, name, email, phone, address, company, notes, created_at, updated_at
		FROM customers WHERE id=$1`
	c := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Company, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return c, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	const query = `
		SELECT id, name, email, phone, address, company, notes, created_at, updated_at
		FROM customers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.Company, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *models.Customer) error {
	const query = `
		UPDATE customers
		SET name=$1, email=$2, phone=$3, address=$4, company=$5, notes=$6, updated_at=$7
		WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.Company, c.Notes, c.UpdatedAt, c.ID)
	return err
}
