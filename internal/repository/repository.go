package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxPool is the subset of *pgxpool.Pool the repositories need. Tests swap
// in stubs.
type pgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// isUniqueViolation reports whether err is a PostgreSQL 23505 on the given
// constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName+pgErr.Message, constraint)
}

// updateBuilder accumulates SET clauses for partial updates.
type updateBuilder struct {
	sets []string
	args []any
}

// set appends a clause when the pointer is non-nil.
func set[T any](b *updateBuilder, column string, v *T) {
	if v == nil {
		return
	}
	b.args = append(b.args, *v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// where appends the id argument and returns the full statement.
func (b *updateBuilder) statement(table string, returning string, id any) (string, []any) {
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), len(b.args), returning,
	)
	return query, b.args
}
