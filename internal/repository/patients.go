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

var ErrPatientNotFound = errors.New("patient not found")

const patientColumns = "id, first_name, last_name, date_of_birth, email, phone, address, payer_id, attorney_id, active, created_at, updated_at"

// NewPatient carries the fields of a patient insert.
type NewPatient struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Email       *string
	Phone       *string
	Address     *string
	PayerID     *uuid.UUID
	AttorneyID  *uuid.UUID
}

// PatientUpdate carries optional fields for a partial patient update.
type PatientUpdate struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Email       *string
	Phone       *string
	Address     *string
	PayerID     *uuid.UUID
	AttorneyID  *uuid.UUID
	Active      *bool
}

// NewProcedure is a procedure row written alongside its patient.
type NewProcedure struct {
	Name        string
	Code        string
	PerformedAt *time.Time
}

// PatientsRepository declares persistence operations for patients and their
// procedure rows.
type PatientsRepository interface {
	Create(ctx context.Context, input NewPatient) (*entity.Patient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error)
	Update(ctx context.Context, id uuid.UUID, upd PatientUpdate) (*entity.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListProcedures(ctx context.Context, patientID uuid.UUID) ([]entity.Procedure, error)
	UpdateWithProcedures(ctx context.Context, id uuid.UUID, upd PatientUpdate, procedures []NewProcedure) (*entity.Patient, []entity.Procedure, error)
}

// PGXPatientsRepository implements PatientsRepository with pgx.
type PGXPatientsRepository struct {
	pool pgxPool
}

// NewPGXPatientsRepository instantiates a patients repository.
func NewPGXPatientsRepository(pool *pgxpool.Pool) *PGXPatientsRepository {
	return &PGXPatientsRepository{pool: pool}
}

func scanPatient(row pgx.Row) (*entity.Patient, error) {
	var p entity.Patient
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Email, &p.Phone, &p.Address, &p.PayerID, &p.AttorneyID, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a patient row.
func (r *PGXPatientsRepository) Create(ctx context.Context, input NewPatient) (*entity.Patient, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO patients (first_name, last_name, date_of_birth, email, phone, address, payer_id, attorney_id, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
        RETURNING `+patientColumns+`
    `, input.FirstName, input.LastName, input.DateOfBirth, input.Email, input.Phone, input.Address, input.PayerID, input.AttorneyID)

	patient, err := scanPatient(row)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}
	return patient, nil
}

// FindByID retrieves a patient by identifier.
func (r *PGXPatientsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)

	patient, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("query patient: %w", err)
	}
	return patient, nil
}

// List returns patients, optionally filtered by a name search.
func (r *PGXPatientsRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+patientColumns+` FROM patients
        WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')
        ORDER BY last_name, first_name
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []entity.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient row: %w", err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return patients, nil
}

func patientUpdateBuilder(upd PatientUpdate) *updateBuilder {
	b := &updateBuilder{}
	set(b, "first_name", upd.FirstName)
	set(b, "last_name", upd.LastName)
	set(b, "date_of_birth", upd.DateOfBirth)
	set(b, "email", upd.Email)
	set(b, "phone", upd.Phone)
	set(b, "address", upd.Address)
	set(b, "payer_id", upd.PayerID)
	set(b, "attorney_id", upd.AttorneyID)
	set(b, "active", upd.Active)
	return b
}

// Update patches patient attributes.
func (r *PGXPatientsRepository) Update(ctx context.Context, id uuid.UUID, upd PatientUpdate) (*entity.Patient, error) {
	b := patientUpdateBuilder(upd)
	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("patients", patientColumns, id)
	patient, err := scanPatient(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return patient, nil
}

// Delete removes a patient by id.
func (r *PGXPatientsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// ListProcedures returns the procedure rows for a patient.
func (r *PGXPatientsRepository) ListProcedures(ctx context.Context, patientID uuid.UUID) ([]entity.Procedure, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, patient_id, name, code, performed_at, created_at
        FROM procedures WHERE patient_id = $1 ORDER BY created_at
    `, patientID)
	if err != nil {
		return nil, fmt.Errorf("list procedures: %w", err)
	}
	defer rows.Close()

	var procedures []entity.Procedure
	for rows.Next() {
		var p entity.Procedure
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Name, &p.Code, &p.PerformedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan procedure row: %w", err)
		}
		procedures = append(procedures, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate procedures: %w", err)
	}
	return procedures, nil
}

// UpdateWithProcedures updates the patient row and replaces its procedure
// set inside one transaction: either both writes land or neither does.
func (r *PGXPatientsRepository) UpdateWithProcedures(ctx context.Context, id uuid.UUID, upd PatientUpdate, procedures []NewProcedure) (*entity.Patient, []entity.Procedure, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var patient *entity.Patient
	b := patientUpdateBuilder(upd)
	if b.empty() {
		patient, err = scanPatient(tx.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id))
	} else {
		query, args := b.statement("patients", patientColumns, id)
		patient, err = scanPatient(tx.QueryRow(ctx, query, args...))
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrPatientNotFound
		}
		return nil, nil, fmt.Errorf("update patient: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM procedures WHERE patient_id = $1`, id); err != nil {
		return nil, nil, fmt.Errorf("clear procedures: %w", err)
	}

	inserted := make([]entity.Procedure, 0, len(procedures))
	for _, proc := range procedures {
		row := tx.QueryRow(ctx, `
            INSERT INTO procedures (patient_id, name, code, performed_at)
            VALUES ($1, $2, $3, $4)
            RETURNING id, patient_id, name, code, performed_at, created_at
        `, id, proc.Name, proc.Code, proc.PerformedAt)

		var p entity.Procedure
		if err := row.Scan(&p.ID, &p.PatientID, &p.Name, &p.Code, &p.PerformedAt, &p.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("insert procedure: %w", err)
		}
		inserted = append(inserted, p)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit patient update: %w", err)
	}
	return patient, inserted, nil
}
