package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskActionType tags a task with the kind of action it asks for. The custom
// value carries the user-defined label in CustomActionType.
type TaskActionType string

const (
	ActionCall     TaskActionType = "call"
	ActionEmail    TaskActionType = "email"
	ActionMeeting  TaskActionType = "meeting"
	ActionFollowUp TaskActionType = "follow_up"
	ActionCustom   TaskActionType = "custom"
)

// Task represents a unit of work, optionally linked back to a lead, deal or
// customer.
type Task struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Priority          TaskPriority    `json:"priority"`
	Status            TaskStatus      `json:"status"`
	ActionType        *TaskActionType `json:"action_type,omitempty"`
	CustomActionType  *string         `json:"custom_action_type,omitempty"`
	ScheduledFor      *time.Time      `json:"scheduled_for,omitempty"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	ReminderAt        *time.Time      `json:"reminder_at,omitempty"`
	LastRemindedAt    *time.Time      `json:"last_reminded_at,omitempty"`
	AssigneeID        *int64          `json:"assignee_id,omitempty"`
	RelatedLeadID     *int64          `json:"related_lead_id,omitempty"`
	RelatedDealID     *int64          `json:"related_deal_id,omitempty"`
	RelatedCustomerID *int64          `json:"related_customer_id,omitempty"`
	AddToCalendar     bool            `json:"add_to_calendar"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TaskFilter defines the available parameters for filtering tasks.
type TaskFilter struct {
	AssigneeID    *int64
	Status        *TaskStatus
	RelatedLeadID *int64
	RelatedDealID *int64
}
