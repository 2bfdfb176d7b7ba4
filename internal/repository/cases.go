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

var ErrCaseNotFound = errors.New("case not found")

const caseColumns = "id, patient_id, attorney_id, title, status_id, opened_at, closed_at, created_at, updated_at"

// NewCase carries the fields of a case insert.
type NewCase struct {
	PatientID  uuid.UUID
	AttorneyID *uuid.UUID
	Title      string
	StatusID   *uuid.UUID
	OpenedAt   time.Time
}

// CaseUpdate carries optional fields for a partial case update.
type CaseUpdate struct {
	AttorneyID *uuid.UUID
	Title      *string
	StatusID   *uuid.UUID
	ClosedAt   *time.Time
}

// CasesRepository declares persistence operations for cases.
type CasesRepository interface {
	Create(ctx context.Context, input NewCase) (*entity.Case, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Case, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Case, error)
	Update(ctx context.Context, id uuid.UUID, upd CaseUpdate) (*entity.Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXCasesRepository implements CasesRepository with pgx.
type PGXCasesRepository struct {
	pool pgxPool
}

// NewPGXCasesRepository instantiates a cases repository.
func NewPGXCasesRepository(pool *pgxpool.Pool) *PGXCasesRepository {
	return &PGXCasesRepository{pool: pool}
}

func scanCase(row pgx.Row) (*entity.Case, error) {
	var c entity.Case
	if err := row.Scan(&c.ID, &c.PatientID, &c.AttorneyID, &c.Title, &c.StatusID, &c.OpenedAt, &c.ClosedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a case row.
func (r *PGXCasesRepository) Create(ctx context.Context, input NewCase) (*entity.Case, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO cases (patient_id, attorney_id, title, status_id, opened_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+caseColumns+`
    `, input.PatientID, input.AttorneyID, input.Title, input.StatusID, input.OpenedAt)

	kase, err := scanCase(row)
	if err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}
	return kase, nil
}

// FindByID retrieves a case by identifier.
func (r *PGXCasesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	kase, err := scanCase(r.pool.QueryRow(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("query case: %w", err)
	}
	return kase, nil
}

// List returns cases, optionally filtered by title search.
func (r *PGXCasesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Case, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+caseColumns+` FROM cases
        WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
        ORDER BY opened_at DESC
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()
	return collectCases(rows)
}

// ListByPatient returns all cases belonging to a patient.
func (r *PGXCasesRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Case, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+caseColumns+` FROM cases WHERE patient_id = $1 ORDER BY opened_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list cases by patient: %w", err)
	}
	defer rows.Close()
	return collectCases(rows)
}

func collectCases(rows pgx.Rows) ([]entity.Case, error) {
	var cases []entity.Case
	for rows.Next() {
		kase, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case row: %w", err)
		}
		cases = append(cases, *kase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}

// Update patches case attributes.
func (r *PGXCasesRepository) Update(ctx context.Context, id uuid.UUID, upd CaseUpdate) (*entity.Case, error) {
	b := &updateBuilder{}
	set(b, "attorney_id", upd.AttorneyID)
	set(b, "title", upd.Title)
	set(b, "status_id", upd.StatusID)
	set(b, "closed_at", upd.ClosedAt)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("cases", caseColumns, id)
	kase, err := scanCase(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("update case: %w", err)
	}
	return kase, nil
}

// Delete removes a case by id.
func (r *PGXCasesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCaseNotFound
	}
	return nil
}
