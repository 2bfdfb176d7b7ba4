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

var ErrExamNotFound = errors.New("exam not found")

const examColumns = "id, patient_id, case_id, facility_id, exam_type, performed_at, report_url, status, created_at, updated_at"

// NewExam carries the fields of an exam insert.
type NewExam struct {
	PatientID   uuid.UUID
	CaseID      *uuid.UUID
	FacilityID  *uuid.UUID
	ExamType    string
	PerformedAt *time.Time
	ReportURL   *string
	Status      string
}

// ExamUpdate carries optional fields for a partial exam update.
type ExamUpdate struct {
	CaseID      *uuid.UUID
	FacilityID  *uuid.UUID
	ExamType    *string
	PerformedAt *time.Time
	ReportURL   *string
	Status      *string
}

// ExamsRepository declares persistence operations for exams.
type ExamsRepository interface {
	Create(ctx context.Context, input NewExam) (*entity.Exam, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Exam, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Exam, error)
	Update(ctx context.Context, id uuid.UUID, upd ExamUpdate) (*entity.Exam, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXExamsRepository implements ExamsRepository with pgx.
type PGXExamsRepository struct {
	pool pgxPool
}

// NewPGXExamsRepository instantiates an exams repository.
func NewPGXExamsRepository(pool *pgxpool.Pool) *PGXExamsRepository {
	return &PGXExamsRepository{pool: pool}
}

func scanExam(row pgx.Row) (*entity.Exam, error) {
	var e entity.Exam
	if err := row.Scan(&e.ID, &e.PatientID, &e.CaseID, &e.FacilityID, &e.ExamType, &e.PerformedAt, &e.ReportURL, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts an exam row.
func (r *PGXExamsRepository) Create(ctx context.Context, input NewExam) (*entity.Exam, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO exams (patient_id, case_id, facility_id, exam_type, performed_at, report_url, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+examColumns+`
    `, input.PatientID, input.CaseID, input.FacilityID, input.ExamType, input.PerformedAt, input.ReportURL, input.Status)

	exam, err := scanExam(row)
	if err != nil {
		return nil, fmt.Errorf("insert exam: %w", err)
	}
	return exam, nil
}

// FindByID retrieves an exam by identifier.
func (r *PGXExamsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error) {
	exam, err := scanExam(r.pool.QueryRow(ctx, `SELECT `+examColumns+` FROM exams WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("query exam: %w", err)
	}
	return exam, nil
}

// List returns exams, optionally filtered by type search.
func (r *PGXExamsRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Exam, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+examColumns+` FROM exams
        WHERE ($1 = '' OR exam_type ILIKE '%' || $1 || '%')
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	defer rows.Close()
	return collectExams(rows)
}

// ListByPatient returns all exams for a patient.
func (r *PGXExamsRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Exam, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+examColumns+` FROM exams WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list exams by patient: %w", err)
	}
	defer rows.Close()
	return collectExams(rows)
}

func collectExams(rows pgx.Rows) ([]entity.Exam, error) {
	var exams []entity.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exam row: %w", err)
		}
		exams = append(exams, *exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exams: %w", err)
	}
	return exams, nil
}

// Update patches exam attributes.
func (r *PGXExamsRepository) Update(ctx context.Context, id uuid.UUID, upd ExamUpdate) (*entity.Exam, error) {
	b := &updateBuilder{}
	set(b, "case_id", upd.CaseID)
	set(b, "facility_id", upd.FacilityID)
	set(b, "exam_type", upd.ExamType)
	set(b, "performed_at", upd.PerformedAt)
	set(b, "report_url", upd.ReportURL)
	set(b, "status", upd.Status)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("exams", examColumns, id)
	exam, err := scanExam(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("update exam: %w", err)
	}
	return exam, nil
}

// Delete removes an exam by id.
func (r *PGXExamsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrExamNotFound
	}
	return nil
}
