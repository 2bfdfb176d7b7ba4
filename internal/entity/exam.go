package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExamOrdered   = "ordered"
	ExamPerformed = "performed"
	ExamReported  = "reported"
	ExamCancelled = "cancelled"
)

// Exam is a diagnostic study (MRI, X-ray, IME) tied to a patient and
// optionally to a case.
type Exam struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	CaseID      *uuid.UUID `json:"case_id,omitempty"`
	FacilityID  *uuid.UUID `json:"facility_id,omitempty"`
	ExamType    string     `json:"exam_type"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
	ReportURL   *string    `json:"report_url,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
