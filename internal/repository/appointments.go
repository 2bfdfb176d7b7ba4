package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

const appointmentColumns = "id, patient_id, physician_id, facility_id, scheduled_at, duration_minutes, status, notes, created_at, updated_at"

// NewAppointment carries the fields of an appointment insert.
type NewAppointment struct {
	PatientID       uuid.UUID
	PhysicianID     *uuid.UUID
	FacilityID      *uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Status          string
	Notes           *string
}

// AppointmentUpdate carries optional fields for a partial appointment update.
type AppointmentUpdate struct {
	PhysicianID     *uuid.UUID
	FacilityID      *uuid.UUID
	ScheduledAt     *time.Time
	DurationMinutes *int
	Status          *string
	Notes           *string
}

// AppointmentsRepository declares persistence operations for appointments.
type AppointmentsRepository interface {
	Create(ctx context.Context, input NewAppointment) (*entity.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, upd AppointmentUpdate) (*entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXAppointmentsRepository implements AppointmentsRepository with pgx.
type PGXAppointmentsRepository struct {
	pool pgxPool
}

// NewPGXAppointmentsRepository instantiates an appointments repository.
func NewPGXAppointmentsRepository(pool *pgxpool.Pool) *PGXAppointmentsRepository {
	return &PGXAppointmentsRepository{pool: pool}
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	if err := row.Scan(&a.ID, &a.PatientID, &a.PhysicianID, &a.FacilityID, &a.ScheduledAt, &a.DurationMinutes, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an appointment row.
func (r *PGXAppointmentsRepository) Create(ctx context.Context, input NewAppointment) (*entity.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO appointments (patient_id, physician_id, facility_id, scheduled_at, duration_minutes, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+appointmentColumns+`
    `, input.PatientID, input.PhysicianID, input.FacilityID, input.ScheduledAt, input.DurationMinutes, input.Status, input.Notes)

	appt, err := scanAppointment(row)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return appt, nil
}

// FindByID retrieves an appointment by identifier.
func (r *PGXAppointmentsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appt, err := scanAppointment(r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("query appointment: %w", err)
	}
	return appt, nil
}

// List returns upcoming-first appointments, optionally filtered by status.
func (r *PGXAppointmentsRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Appointment, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+appointmentColumns+` FROM appointments
        WHERE ($1 = '' OR status = $1)
        ORDER BY scheduled_at DESC
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

// ListByPatient returns all appointments for a patient.
func (r *PGXAppointmentsRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE patient_id = $1 ORDER BY scheduled_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by patient: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appts = append(appts, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return appts, nil
}

// Update patches appointment attributes.
func (r *PGXAppointmentsRepository) Update(ctx context.Context, id uuid.UUID, upd AppointmentUpdate) (*entity.Appointment, error) {
	b := &updateBuilder{}
	set(b, "physician_id", upd.PhysicianID)
	set(b, "facility_id", upd.FacilityID)
	set(b, "scheduled_at", upd.ScheduledAt)
	set(b, "duration_minutes", upd.DurationMinutes)
	set(b, "status", upd.Status)
	set(b, "notes", upd.Notes)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("appointments", appointmentColumns, id)
	appt, err := scanAppointment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appt, nil
}

// Delete removes an appointment by id.
func (r *PGXAppointmentsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
