package service

import (
	"context"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// AppointmentService owns visit scheduling.
type AppointmentService struct {
	repo     repository.AppointmentsRepository
	patients repository.PatientsRepository
}

// NewAppointmentService builds a new AppointmentService.
func NewAppointmentService(repo repository.AppointmentsRepository, patients repository.PatientsRepository) *AppointmentService {
	return &AppointmentService{repo: repo, patients: patients}
}

// CreateAppointment schedules a visit for an existing patient. Status
// defaults to scheduled.
func (s *AppointmentService) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	patientID, err := parseID("patient_id", req.PatientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}

	physicianID, err := optionalID("physician_id", req.PhysicianID)
	if err != nil {
		return nil, err
	}
	facilityID, err := optionalID("facility_id", req.FacilityID)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := parseTimestamp("scheduled_at", req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.AppointmentScheduled
	}

	return s.repo.Create(ctx, repository.NewAppointment{
		PatientID:       patientID,
		PhysicianID:     physicianID,
		FacilityID:      facilityID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          status,
		Notes:           optionalString(req.Notes),
	})
}

// GetAppointment returns one appointment by id.
func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	apptID, err := parseID("appointment id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, apptID)
}

// ListAppointments returns a filtered page of appointments. Search matches
// the status column exactly.
func (s *AppointmentService) ListAppointments(ctx context.Context, filter dto.ListFilter) ([]entity.Appointment, error) {
	return s.repo.List(ctx, filter)
}

// ListPatientAppointments returns every appointment for a patient.
func (s *AppointmentService) ListPatientAppointments(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	id, err := parseID("patient id", patientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, id)
}

// UpdateAppointment applies a partial update.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id string, req dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	apptID, err := parseID("appointment id", id)
	if err != nil {
		return nil, err
	}

	upd := repository.AppointmentUpdate{
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
		Notes:           req.Notes,
	}
	if upd.PhysicianID, err = optionalIDPtr("physician_id", req.PhysicianID); err != nil {
		return nil, err
	}
	if upd.FacilityID, err = optionalIDPtr("facility_id", req.FacilityID); err != nil {
		return nil, err
	}
	if upd.ScheduledAt, err = optionalTimestampPtr("scheduled_at", req.ScheduledAt); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, apptID, upd)
}

// DeleteAppointment removes an appointment by id.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string) error {
	apptID, err := parseID("appointment id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, apptID)
}
