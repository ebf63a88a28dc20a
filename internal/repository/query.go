package repository

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/sqlerr"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"
)

const (
	articlesTable = "blogful_articles"
	productsTable = "shopping_list"

	// DefaultPageSize is the page size the drills use for shopping-list pages.
	DefaultPageSize = 6
)

var (
	articleColumns = []string{"id", "title", "content", "date_published"}
	productColumns = []string{"id", "name", "price", "date_added", "checked", "category"}
)

// assignment is one column = value pair of an INSERT or UPDATE.
type assignment struct {
	column string
	value  any
}

// likeEscaper escapes LIKE metacharacters with the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern matching the term
// literally anywhere in the column. The empty term matches everything.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// pageOffset returns the row offset of a 1-indexed page. Offsets that do not
// fit in an int are clamped to math.MaxInt; such pages are empty anyway.
func pageOffset(pageNumber, pageSize int) (int, error) {
	if pageNumber <= 0 {
		return 0, errs.InvalidArgument("page_number", "must be >= 1, got %d", pageNumber)
	}
	if pageSize <= 0 {
		return 0, errs.InvalidArgument("page_size", "must be >= 1, got %d", pageSize)
	}
	if pageNumber-1 > math.MaxInt/pageSize {
		return math.MaxInt, nil
	}
	return (pageNumber - 1) * pageSize, nil
}

// validDays rejects negative, NaN and infinite day counts.
func validDays(daysAgo float64) error {
	if math.IsNaN(daysAgo) || math.IsInf(daysAgo, 0) || daysAgo < 0 {
		return errs.InvalidArgument("days_ago", "must be a finite non-negative number, got %v", daysAgo)
	}
	return nil
}

func selectAll(table string, columns []string) *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...).From(table).OrderBy("id").Asc()
	return sb
}

func selectByID(table string, columns []string, id int64) (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...).From(table).Where(sb.Equal("id", id))
	return sb.Build()
}

func insertReturning(table string, set []assignment, returning []string) (string, []any) {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto(table)

	cols := make([]string, 0, len(set))
	values := make([]any, 0, len(set))
	for _, a := range set {
		cols = append(cols, a.column)
		values = append(values, a.value)
	}

	ib.Cols(cols...).Values(values...)
	ib.SQL("RETURNING " + strings.Join(returning, ", "))
	return ib.Build()
}

func updateByID(table string, set []assignment, id int64) (string, []any) {
	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update(table)

	assigns := make([]string, 0, len(set))
	for _, a := range set {
		assigns = append(assigns, ub.Assign(a.column, a.value))
	}

	ub.Set(assigns...).Where(ub.Equal("id", id))
	return ub.Build()
}

func deleteByID(table string, id int64) (string, []any) {
	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom(table).Where(db.Equal("id", id))
	return db.Build()
}

// queryAll runs a statement and maps every row onto T by column name.
// The result is never nil.
func queryAll[T any](ctx context.Context, db DBTX, sql string, args []any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.Convert(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, sqlerr.Convert(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// queryOne runs a statement expected to return at most one row.
// No row yields nil, nil.
func queryOne[T any](ctx context.Context, db DBTX, sql string, args []any) (*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.Convert(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlerr.Convert(err)
	}
	return item, nil
}

// execAffected runs a statement and returns the affected-count.
func execAffected(ctx context.Context, db DBTX, sql string, args []any) (int64, error) {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, sqlerr.Convert(err)
	}
	return tag.RowsAffected(), nil
}
