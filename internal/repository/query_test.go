package repository

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{term: "", want: "%%"},
		{term: "Tofurkey", want: "%Tofurkey%"},
		{term: "50%", want: `%50\%%`},
		{term: "a_b", want: `%a\_b%`},
		{term: `c:\dir`, want: `%c:\\dir%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.term), tt.term)
	}
}

func TestPageOffset(t *testing.T) {
	offset, err := pageOffset(1, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)

	offset, err = pageOffset(4, 6)
	require.NoError(t, err)
	assert.Equal(t, 18, offset)

	offset, err = pageOffset(400_000_000, 6)
	require.NoError(t, err)
	assert.Equal(t, 2_399_999_994, offset)

	offset, err = pageOffset(math.MaxInt, DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, offset)

	for _, tc := range []struct{ page, size int }{{0, 6}, {-1, 6}, {1, 0}, {1, -3}} {
		_, err := pageOffset(tc.page, tc.size)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument), "page=%d size=%d", tc.page, tc.size)
	}
}

func TestValidDays(t *testing.T) {
	assert.NoError(t, validDays(0))
	assert.NoError(t, validDays(30))
	assert.NoError(t, validDays(0.5))

	for _, d := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.True(t, errors.Is(validDays(d), errs.ErrInvalidArgument), "%v", d)
	}
}

func TestSelectByID(t *testing.T) {
	sql, args := selectByID(articlesTable, articleColumns, 3)

	assert.Contains(t, sql, "SELECT id, title, content, date_published FROM blogful_articles")
	assert.Contains(t, sql, "WHERE id = $1")
	assert.Equal(t, []any{int64(3)}, args)
}

func TestInsertReturning(t *testing.T) {
	published := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	sql, args := insertReturning(articlesTable, []assignment{
		{column: "title", value: "Test new title"},
		{column: "content", value: "Test new content"},
		{column: "date_published", value: published},
	}, articleColumns)

	assert.Contains(t, sql, "INSERT INTO blogful_articles (title, content, date_published)")
	assert.Contains(t, sql, "VALUES ($1, $2, $3)")
	assert.Contains(t, sql, "RETURNING id, title, content, date_published")
	assert.Equal(t, []any{"Test new title", "Test new content", published}, args)
}

func TestUpdateByID(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	sql, args := updateByID(productsTable, []assignment{
		{column: "name", value: "new name"},
		{column: "price", value: price},
	}, 1)

	assert.Contains(t, sql, "UPDATE shopping_list SET name = $1, price = $2")
	assert.Contains(t, sql, "WHERE id = $3")
	assert.NotContains(t, sql, "product_id")
	assert.Equal(t, []any{"new name", price, int64(1)}, args)
}

func TestDeleteByID(t *testing.T) {
	sql, args := deleteByID(productsTable, 999)

	assert.Contains(t, sql, "DELETE FROM shopping_list WHERE id = $1")
	assert.Equal(t, []any{int64(999)}, args)
}

func TestSearchByNameQuery(t *testing.T) {
	sql, args := searchByNameQuery("Tofu_rkey")

	assert.Contains(t, sql, "FROM shopping_list")
	assert.Contains(t, sql, "name ILIKE $1")
	assert.Contains(t, sql, "ORDER BY id ASC")
	assert.Equal(t, []any{`%Tofu\_rkey%`}, args)
}

func TestPaginateQuery(t *testing.T) {
	sql, _, err := paginateQuery(2, 6)
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY id ASC")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")

	_, _, err = paginateQuery(0, 6)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	sql, _, err = paginateQuery(400_000_000, 6)
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 6 OFFSET 2399999994")
}

func TestAddedSinceQuery(t *testing.T) {
	sql, args, err := addedSinceQuery(30)
	require.NoError(t, err)

	assert.Contains(t, sql, "date_added > now() - ($1::float8 * INTERVAL '1 day')")
	assert.Equal(t, []any{float64(30)}, args)

	_, _, err = addedSinceQuery(-1)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestTotalCostByCategoryQuery(t *testing.T) {
	sql, args := totalCostByCategoryQuery()

	assert.Equal(t,
		"SELECT category, SUM(price) AS total FROM shopping_list GROUP BY category ORDER BY total DESC, category ASC",
		sql,
	)
	assert.Empty(t, args)
}
