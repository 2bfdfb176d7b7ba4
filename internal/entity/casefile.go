package entity

import (
	"time"

	"github.com/google/uuid"
)

// Case tracks a patient matter (typically personal injury) from open to close.
type Case struct {
	ID         uuid.UUID  `json:"id"`
	PatientID  uuid.UUID  `json:"patient_id"`
	AttorneyID *uuid.UUID `json:"attorney_id,omitempty"`
	Title      string     `json:"title"`
	StatusID   *uuid.UUID `json:"status_id,omitempty"`
	OpenedAt   time.Time  `json:"opened_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
