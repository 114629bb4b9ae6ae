package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"clientdesk/internal/models"
)

type LeadRepository interface {
	Store(ctx context.Context, lead *models.Lead) error
	FindByID(ctx context.Context, id int64) (*models.Lead, error)
	FindAll(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	UpdateStatus(ctx context.Context, id int64, to models.LeadStatus) error
	Archive(ctx context.Context, id int64) error
}

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	return &leadRepository{db: db}
}

const leadColumns = `id, name, company, email, phone, address, source, status, value, notes,
       next_activity, next_activity_date, is_client, kanban_lane, pipeline_id,
       owner_id, archived, created_at, updated_at`

func scanLead(row interface{ Scan(...interface{}) error }) (*models.Lead, error) {
	l := &models.Lead{}
	err := row.Scan(
		&l.ID, &l.Name, &l.Company, &l.Email, &l.Phone, &l.Address, &l.Source,
		&l.Status, &l.Value, &l.Notes, &l.NextActivity, &l.NextActivityDate,
		&l.IsClient, &l.KanbanLane, &l.PipelineID, &l.OwnerID, &l.Archived,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leadRepository) Store(ctx context.Context, lead *models.Lead) error {
	const query = `
		INSERT INTO leads (name, company, email, phone, address, source, status, value, notes,
		                   next_activity, next_activity_date, is_client, kanban_lane, pipeline_id,
		                   owner_id, archived, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		lead.Name, lead.Company, lead.Email, lead.Phone, lead.Address, lead.Source,
		lead.Status, lead.Value, lead.Notes, lead.NextActivity, lead.NextActivityDate,
		lead.IsClient, lead.KanbanLane, lead.PipelineID, lead.OwnerID, lead.Archived,
		lead.CreatedAt, lead.UpdatedAt,
	).Scan(&lead.ID)
}

func (r *leadRepository) FindByID(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := scanLead(r.db.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by id: %w", err)
	}
	return lead, nil
}

func (r *leadRepository) FindAll(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	i := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, *filter.Status)
		i++
	}
	if filter.OwnerID != nil {
		query += fmt.Sprintf(" AND owner_id = $%d", i)
		args = append(args, *filter.OwnerID)
		i++
	}
	if filter.IsClient != nil {
		query += fmt.Sprintf(" AND is_client = $%d", i)
		args = append(args, *filter.IsClient)
		i++
	}
	if filter.Archived != nil {
		query += fmt.Sprintf(" AND archived = $%d", i)
		args = append(args, *filter.Archived)
		i++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) error {
	const query = `
		UPDATE leads
		SET name=$1, company=$2, email=$3, phone=$4, address=$5, source=$6, status=$7,
		    value=$8, notes=$9, next_activity=$10, next_activity_date=$11, is_client=$12,
		    kanban_lane=$13, pipeline_id=$14, owner_id=$15, archived=$16, updated_at=$17
		WHERE id=$18`
	_, err := r.db.ExecContext(ctx, query,
		lead.Name, lead.Company, lead.Email, lead.Phone, lead.Address, lead.Source,
		lead.Status, lead.Value, lead.Notes, lead.NextActivity, lead.NextActivityDate,
		lead.IsClient, lead.KanbanLane, lead.PipelineID, lead.OwnerID, lead.Archived,
		lead.UpdatedAt, lead.ID,
	)
	return err
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id int64, to models.LeadStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leads SET status=$1, updated_at=NOW() WHERE id=$2`, to, id)
	return err
}

func (r *leadRepository) Archive(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leads SET archived=TRUE, updated_at=NOW() WHERE id=$1`, id)
	return err
}
