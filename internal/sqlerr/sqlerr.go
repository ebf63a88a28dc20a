// Package sqlerr handles errors coming back from the PostgreSQL driver.
//
// It classifies raw SQLSTATE codes into a small Code enum, lets callers test
// for constraint violations with errors.Is, and converts database errors into
// client-facing messages at the HTTP edge.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the normalized category of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	// DataException covers SQLSTATE class 22: bad casts, out of range
	// numerics, invalid text representation and similar.
	DataException Code = "data_exception"
)

// Severity mirrors the PostgreSQL severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a structured view over *pgconn.PgError.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	if e.ConstraintName != "" {
		return fmt.Sprintf("%s (SQLSTATE %s, constraint %s)", e.Message, e.DatabaseCode, e.ConstraintName)
	}
	return fmt.Sprintf("%s (SQLSTATE %s)", e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Is reports errs.ErrConstraintViolation for integrity and data errors.
func (e *Error) Is(target error) bool {
	return target == errs.ErrConstraintViolation && e.IsConstraintViolation()
}

// IsConstraintViolation reports whether the store refused the write because
// of the data it was given.
func (e *Error) IsConstraintViolation() bool {
	return e.Code != Other
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	}

	if strings.HasPrefix(sqlState, "22") {
		return DataException
	}
	return Other
}

// MapSeverity maps the PostgreSQL severity string to a Severity.
// Unknown values are treated as ERROR.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	}
	return SeverityError
}

// ErrCode reports the Code carried by err, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw server error into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Convert returns err with any *pgconn.PgError in its chain replaced by *Error.
// Other errors, including nil and transport failures, are returned unchanged.
func Convert(err error) error {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return err
	}

	var already *Error
	if errors.As(err, &already) {
		return err
	}

	return ConvertPgError(pgErr)
}
