package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a work item, optionally assigned to a user and linked to a case.
type Task struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Details    *string    `json:"details,omitempty"`
	AssigneeID *uuid.UUID `json:"assignee_id,omitempty"`
	CaseID     *uuid.UUID `json:"case_id,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Completed  bool       `json:"completed"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
