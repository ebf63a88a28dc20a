// Package repository handles all interactions with the database.
//
// Each repository wraps exactly one table and issues one parameterized
// statement per operation through a DBTX handle it is given. Repositories
// never open, own or close connections, never log, and never retry: every
// failure goes back to the caller.
//
// Absence is not an error: GetByID returns nil, nil when no row matches.
// Store rejections satisfy errors.Is(err, errs.ErrConstraintViolation) and
// rejected arguments satisfy errors.Is(err, errs.ErrInvalidArgument).
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the database handle the repositories run against.
//
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it, so callers that need
// several operations to commit together pass a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
