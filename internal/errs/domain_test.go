package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentError(t *testing.T) {
	err := fmt.Errorf("paginate products: %w", InvalidArgument("page", "must be >= 1, got %d", 0))

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrConstraintViolation))
	assert.EqualError(t, err, "paginate products: invalid argument page: must be >= 1, got 0")

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))

	httpErr := argErr.ToHTTP()
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "page", httpErr.Errors[0].Field)
}

func TestHTTPError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("Article not found", true, nil))

	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.Equal(t, "NOT_FOUND", NewNotFoundError("x", false, nil).Code)

	code := "ARTICLE_NOT_FOUND"
	assert.Equal(t, code, NewNotFoundError("x", false, &code).Code)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}
