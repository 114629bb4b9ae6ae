package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"clientdesk/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error
	UpdateAssignee(ctx context.Context, id int64, assigneeID int64) error
	ListDueForReminder(ctx context.Context, limit int) ([]models.Task, error)
	SetReminderFired(ctx context.Context, id int64) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, description, priority, status, action_type, custom_action_type,
       scheduled_for, due_date, reminder_at, last_reminded_at, assignee_id,
       related_lead_id, related_deal_id, related_customer_id, add_to_calendar,
       created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.ActionType,
		&t.CustomActionType, &t.ScheduledFor, &t.DueDate, &t.ReminderAt,
		&t.LastRemindedAt, &t.AssigneeID, &t.RelatedLeadID, &t.RelatedDealID,
		&t.RelatedCustomerID, &t.AddToCalendar, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const query = `
		INSERT INTO tasks (title, description, priority, status, action_type, custom_action_type,
		                   scheduled_for, due_date, reminder_at, assignee_id,
		                   related_lead_id, related_deal_id, related_customer_id, add_to_calendar,
		                   created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Priority, task.Status, task.ActionType,
		task.CustomActionType, task.ScheduledFor, task.DueDate, task.ReminderAt,
		task.AssigneeID, task.RelatedLeadID, task.RelatedDealID, task.RelatedCustomerID,
		task.AddToCalendar, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find task by id: %w", err)
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	baseQuery := `SELECT ` + taskColumns + ` FROM tasks`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.AssigneeID != nil {
		conditions = append(conditions, fmt.Sprintf("assignee_id = $%d", argID))
		args = append(args, *filter.AssigneeID)
		argID++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.RelatedLeadID != nil {
		conditions = append(conditions, fmt.Sprintf("related_lead_id = $%d", argID))
		args = append(args, *filter.RelatedLeadID)
		argID++
	}
	if filter.RelatedDealID != nil {
		conditions = append(conditions, fmt.Sprintf("related_deal_id = $%d", argID))
		args = append(args, *filter.RelatedDealID)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	const query = `
		UPDATE tasks SET
			title=$1, description=$2, priority=$3, status=$4, action_type=$5,
			custom_action_type=$6, scheduled_for=$7, due_date=$8, reminder_at=$9,
			assignee_id=$10, related_lead_id=$11, related_deal_id=$12,
			related_customer_id=$13, add_to_calendar=$14, updated_at=$15
		WHERE id=$16`
	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Priority, task.Status, task.ActionType,
		task.CustomActionType, task.ScheduledFor, task.DueDate, task.ReminderAt,
		task.AssigneeID, task.RelatedLeadID, task.RelatedDealID, task.RelatedCustomerID,
		task.AddToCalendar, task.UpdatedAt, task.ID,
	)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status=$1, updated_at=NOW() WHERE id=$2`, to, id)
	return err
}

func (r *taskRepository) UpdateAssignee(ctx context.Context, id int64, assigneeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET assignee_id=$1, updated_at=NOW() WHERE id=$2`, assigneeID, id)
	return err
}

func (r *taskRepository) ListDueForReminder(ctx context.Context, limit int) ([]models.Task, error) {
	q := `
SELECT ` + taskColumns + `
FROM tasks
WHERE reminder_at IS NOT NULL
  AND reminder_at <= NOW()
  AND (last_reminded_at IS NULL OR last_reminded_at < reminder_at)
  AND status <> 'completed'
ORDER BY reminder_at ASC
LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *taskRepository) SetReminderFired(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET last_reminded_at = NOW(), updated_at=NOW() WHERE id=$1`, id)
	return err
}
