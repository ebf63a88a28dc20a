package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tableEntities names the entity stored in each table. Table names are
// historical and do not singularize cleanly.
var tableEntities = map[string]string{
	"blogful_articles": "article",
	"shopping_list":    "product",
}

var uniqueKeySuffix = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// generateErrorCode builds a machine code of the form <ENTITY>_<ACTION>,
// e.g. PRODUCT_INVALID for a CHECK failure on shopping_list.
func generateErrorCode(tableName string, code Code) string {
	domain := strings.ToUpper(strings.ReplaceAll(entityForTable(tableName), " ", "_"))

	action := "ERROR"
	switch code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, DataException:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the message sent to clients.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is swapped for the column name when it can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(columnForCheck(sqlErr)); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case DataException:
		return fmt.Sprintf("One or more %s values are malformed or out of range", entityName)

	default:
		return "An error occurred while processing your request"
	}
}

func entityForTable(tableName string) string {
	if tableName == "" {
		return "record"
	}
	if entity, ok := tableEntities[tableName]; ok {
		return entity
	}

	entity := strings.ReplaceAll(tableName, "_", " ")
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return entity
}

// getEntityName prefers a "<entity>_id" column, then the table.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}
	return humanizeText(entityForTable(tableName))
}

// humanizeText converts snake_case into Title Case: "date_added" -> "Date Added".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// columnForCheck infers the column from CHECK constraint names of the form
// <table>_<column>_check, which is what PostgreSQL generates for inline checks.
func columnForCheck(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}

	name := strings.TrimSuffix(sqlErr.ConstraintName, "_check")
	if name == sqlErr.ConstraintName || sqlErr.TableName == "" {
		return ""
	}
	return strings.TrimPrefix(name, sqlErr.TableName+"_")
}

// extractColumnForUniqueViolation supports "unique_<table>_<column>" and
// "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeySuffix.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts an error from the lower layers into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - *errs.ArgumentError: 400 with a field error
//   - database constraint/data errors: 400 with a friendly message
//   - ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var argErr *errs.ArgumentError
	if errors.As(err, &argErr) {
		return argErr.ToHTTP()
	}

	var sqlErr *Error
	if !errors.As(err, &sqlErr) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			sqlErr = ConvertPgError(pgErr)
		}
	}

	if sqlErr != nil {
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, DataException:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil)

		case UniqueViolation:
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case NotNullViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, []errs.FieldError{{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "is required",
			}})

		case CheckViolation:
			var fieldErrors []errs.FieldError
			if column := columnForCheck(sqlErr); column != "" {
				fieldErrors = []errs.FieldError{{Field: column, Error: "is invalid"}}
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
