package dto

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreatePatientRequest captures a new patient record.
type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=120"`
	LastName    string `json:"last_name" validate:"required,min=1,max=120"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=500"`
	PayerID     string `json:"payer_id,omitempty" validate:"omitempty,uuid"`
	AttorneyID  string `json:"attorney_id,omitempty" validate:"omitempty,uuid"`
}

// ProcedureInput is a procedure row submitted with a patient update. The
// submitted set replaces the patient's existing procedures atomically.
type ProcedureInput struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code" validate:"required,min=1,max=20"`
	PerformedAt string `json:"performed_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePatientRequest captures partial patient updates. When Procedures is
// present the patient row and the full procedure set are written in one
// transaction.
type UpdatePatientRequest struct {
	FirstName   *string           `json:"first_name,omitempty" validate:"omitempty,min=1,max=120"`
	LastName    *string           `json:"last_name,omitempty" validate:"omitempty,min=1,max=120"`
	DateOfBirth *string           `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Email       *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string           `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address     *string           `json:"address,omitempty" validate:"omitempty,max=500"`
	PayerID     *string           `json:"payer_id,omitempty" validate:"omitempty,uuid"`
	AttorneyID  *string           `json:"attorney_id,omitempty" validate:"omitempty,uuid"`
	Active      *bool             `json:"active,omitempty"`
	Procedures  *[]ProcedureInput `json:"procedures,omitempty" validate:"omitempty,dive"`
}
