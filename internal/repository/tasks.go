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

var ErrTaskNotFound = errors.New("task not found")

const taskColumns = "id, title, details, assignee_id, case_id, due_date, completed, created_at, updated_at"

// NewTask carries the fields of a task insert.
type NewTask struct {
	Title      string
	Details    *string
	AssigneeID *uuid.UUID
	CaseID     *uuid.UUID
	DueDate    *time.Time
}

// TaskUpdate carries optional fields for a partial task update.
type TaskUpdate struct {
	Title      *string
	Details    *string
	AssigneeID *uuid.UUID
	CaseID     *uuid.UUID
	DueDate    *time.Time
	Completed  *bool
}

// TasksRepository declares persistence operations for tasks.
type TasksRepository interface {
	Create(ctx context.Context, input NewTask) (*entity.Task, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Task, error)
	Update(ctx context.Context, id uuid.UUID, upd TaskUpdate) (*entity.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXTasksRepository implements TasksRepository with pgx.
type PGXTasksRepository struct {
	pool pgxPool
}

// NewPGXTasksRepository instantiates a tasks repository.
func NewPGXTasksRepository(pool *pgxpool.Pool) *PGXTasksRepository {
	return &PGXTasksRepository{pool: pool}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Details, &t.AssigneeID, &t.CaseID, &t.DueDate, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a task row.
func (r *PGXTasksRepository) Create(ctx context.Context, input NewTask) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO tasks (title, details, assignee_id, case_id, due_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+taskColumns+`
    `, input.Title, input.Details, input.AssigneeID, input.CaseID, input.DueDate)

	task, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// FindByID retrieves a task by identifier.
func (r *PGXTasksRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("query task: %w", err)
	}
	return task, nil
}

// List returns tasks, incomplete first, optionally filtered by title search.
func (r *PGXTasksRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Task, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+taskColumns+` FROM tasks
        WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
        ORDER BY completed, due_date NULLS LAST, created_at DESC
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Update patches task attributes.
func (r *PGXTasksRepository) Update(ctx context.Context, id uuid.UUID, upd TaskUpdate) (*entity.Task, error) {
	b := &updateBuilder{}
	set(b, "title", upd.Title)
	set(b, "details", upd.Details)
	set(b, "assignee_id", upd.AssigneeID)
	set(b, "case_id", upd.CaseID)
	set(b, "due_date", upd.DueDate)
	set(b, "completed", upd.Completed)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("tasks", taskColumns, id)
	task, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes a task by id.
func (r *PGXTasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
