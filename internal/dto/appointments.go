package dto

// TimestampLayout is the wire format for points in time.
const TimestampLayout = "2006-01-02T15:04:05Z07:00"

// CreateAppointmentRequest schedules a visit.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"required,uuid"`
	PhysicianID     string `json:"physician_id,omitempty" validate:"omitempty,uuid"`
	FacilityID      string `json:"facility_id,omitempty" validate:"omitempty,uuid"`
	ScheduledAt     string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=480"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled no_show"`
	Notes           string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateAppointmentRequest captures partial appointment updates.
type UpdateAppointmentRequest struct {
	PhysicianID     *string `json:"physician_id,omitempty" validate:"omitempty,uuid"`
	FacilityID      *string `json:"facility_id,omitempty" validate:"omitempty,uuid"`
	ScheduledAt     *string `json:"scheduled_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=480"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled no_show"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
