package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the central administrative record most other entities hang off.
type Patient struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth time.Time  `json:"date_of_birth"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	PayerID     *uuid.UUID `json:"payer_id,omitempty"`
	AttorneyID  *uuid.UUID `json:"attorney_id,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Procedure is a child row of a patient. Procedures are replaced as a set
// together with the owning patient inside one transaction.
type Procedure struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
