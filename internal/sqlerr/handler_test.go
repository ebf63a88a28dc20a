package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"23P01": ExclusionViolation,
		"22P02": DataException,
		"22003": DataException,
		"42P01": Other,
		"08006": Other,
	}

	for state, want := range tests {
		assert.Equal(t, want, MapCode(state), state)
	}
}

func TestConvert(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23514",
		Message:        `new row for relation "shopping_list" violates check constraint "shopping_list_price_check"`,
		TableName:      "shopping_list",
		ConstraintName: "shopping_list_price_check",
	}

	err := fmt.Errorf("insert product: %w", Convert(pgErr))

	assert.True(t, errors.Is(err, errs.ErrConstraintViolation))
	assert.Equal(t, CheckViolation, ErrCode(err))

	var raw *pgconn.PgError
	require.True(t, errors.As(err, &raw))
	assert.Equal(t, "23514", raw.Code)
}

func TestConvert_PassesThroughOtherErrors(t *testing.T) {
	assert.NoError(t, Convert(nil))

	transport := errors.New("connection reset by peer")
	assert.Same(t, transport, Convert(transport))

	undefinedTable := Convert(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"})
	assert.False(t, errors.Is(undefinedTable, errs.ErrConstraintViolation))
}

func TestHandleError(t *testing.T) {
	t.Run("check violation", func(t *testing.T) {
		err := HandleError(Convert(&pgconn.PgError{
			Code:           "23514",
			TableName:      "shopping_list",
			ConstraintName: "shopping_list_price_check",
		}))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "PRODUCT_INVALID", httpErr.Code)
		assert.Equal(t, "The Price value does not meet required conditions", httpErr.Message)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "price", httpErr.Errors[0].Field)
	})

	t.Run("not null violation", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:       "23502",
			TableName:  "blogful_articles",
			ColumnName: "title",
		})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "ARTICLE_REQUIRED", httpErr.Code)
		assert.Equal(t, "The Title is required", httpErr.Message)
	})

	t.Run("unique violation", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "shopping_list",
			ConstraintName: "shopping_list_name_key",
		})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A Product with this Name already exists", httpErr.Message)
	})

	t.Run("invalid argument", func(t *testing.T) {
		err := HandleError(errs.InvalidArgument("days", "must be non-negative"))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	t.Run("no rows", func(t *testing.T) {
		err := HandleError(fmt.Errorf("get: %w", pgx.ErrNoRows))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown", func(t *testing.T) {
		err := HandleError(errors.New("boom"))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("shopping_list_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk"))
}
