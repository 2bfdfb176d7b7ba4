package dto

// CreateCaseRequest opens a new case for a patient.
type CreateCaseRequest struct {
	PatientID  string `json:"patient_id" validate:"required,uuid"`
	AttorneyID string `json:"attorney_id,omitempty" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=1,max=200"`
	StatusID   string `json:"status_id,omitempty" validate:"omitempty,uuid"`
	OpenedAt   string `json:"opened_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateCaseRequest captures partial case updates.
type UpdateCaseRequest struct {
	AttorneyID *string `json:"attorney_id,omitempty" validate:"omitempty,uuid"`
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	StatusID   *string `json:"status_id,omitempty" validate:"omitempty,uuid"`
	ClosedAt   *string `json:"closed_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
