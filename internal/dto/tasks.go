package dto

// CreateTaskRequest adds a work item.
type CreateTaskRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Details    string `json:"details,omitempty" validate:"omitempty,max=2000"`
	AssigneeID string `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
	CaseID     string `json:"case_id,omitempty" validate:"omitempty,uuid"`
	DueDate    string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest captures partial task updates.
type UpdateTaskRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Details    *string `json:"details,omitempty" validate:"omitempty,max=2000"`
	AssigneeID *string `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
	CaseID     *string `json:"case_id,omitempty" validate:"omitempty,uuid"`
	DueDate    *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed  *bool   `json:"completed,omitempty"`
}
