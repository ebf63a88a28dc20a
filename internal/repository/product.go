package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
	"github.com/huandu/go-sqlbuilder"
)

// ProductRepository is CRUD plus reporting over shopping_list.
type ProductRepository struct {
	db DBTX
}

// NewProductRepository creates a ProductRepository over db.
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListAll returns every product in insertion order.
func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	sql, args := selectAll(productsTable, productColumns).Build()

	products, err := queryAll[model.Product](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID returns the product with the given id, or nil when there is none.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	sql, args := selectByID(productsTable, productColumns, id)

	product, err := queryOne[model.Product](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return product, nil
}

// Insert persists a new product and returns it with its assigned id.
func (r *ProductRepository) Insert(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	set := []assignment{
		{column: "name", value: in.Name},
		{column: "price", value: in.Price},
		{column: "checked", value: in.Checked},
		{column: "category", value: in.Category},
	}
	if in.DateAdded != nil {
		set = append(set, assignment{column: "date_added", value: *in.DateAdded})
	}

	sql, args := insertReturning(productsTable, set, productColumns)

	product, err := queryOne[model.Product](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

// DeleteByID removes the product and returns how many rows went away (0 or 1).
func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	sql, args := deleteByID(productsTable, id)

	n, err := execAffected(ctx, r.db, sql, args)
	if err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, err)
	}
	return n, nil
}

// UpdateByID applies patch to the product and returns the affected-count.
func (r *ProductRepository) UpdateByID(ctx context.Context, id int64, patch model.ProductPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, fmt.Errorf("update product %d: %w", id, errs.InvalidArgument("patch", "no fields to update"))
	}

	var set []assignment
	if patch.Name != nil {
		set = append(set, assignment{column: "name", value: *patch.Name})
	}
	if patch.Price != nil {
		set = append(set, assignment{column: "price", value: *patch.Price})
	}
	if patch.DateAdded != nil {
		set = append(set, assignment{column: "date_added", value: *patch.DateAdded})
	}
	if patch.Checked != nil {
		set = append(set, assignment{column: "checked", value: *patch.Checked})
	}
	if patch.Category != nil {
		set = append(set, assignment{column: "category", value: *patch.Category})
	}

	sql, args := updateByID(productsTable, set, id)

	n, err := execAffected(ctx, r.db, sql, args)
	if err != nil {
		return 0, fmt.Errorf("update product %d: %w", id, err)
	}
	return n, nil
}

// SearchByName returns products whose name contains term, ignoring case.
func (r *ProductRepository) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	sql, args := searchByNameQuery(term)

	products, err := queryAll[model.Product](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", term, err)
	}
	return products, nil
}

// Paginate returns the 1-indexed page of products, pageSize rows per page.
// Pages past the end are empty.
func (r *ProductRepository) Paginate(ctx context.Context, pageNumber, pageSize int) ([]model.Product, error) {
	sql, args, err := paginateQuery(pageNumber, pageSize)
	if err != nil {
		return nil, fmt.Errorf("paginate products: %w", err)
	}

	products, err := queryAll[model.Product](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("paginate products: %w", err)
	}
	return products, nil
}

// AddedSince returns products added within the last daysAgo days, measured
// against the database clock.
func (r *ProductRepository) AddedSince(ctx context.Context, daysAgo float64) ([]model.Product, error) {
	sql, args, err := addedSinceQuery(daysAgo)
	if err != nil {
		return nil, fmt.Errorf("products added since: %w", err)
	}

	products, err := queryAll[model.Product](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("products added in last %v days: %w", daysAgo, err)
	}
	return products, nil
}

// TotalCostByCategory sums prices per category, largest total first.
// Categories without rows do not appear.
func (r *ProductRepository) TotalCostByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	sql, args := totalCostByCategoryQuery()

	totals, err := queryAll[model.CategoryTotal](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("total cost by category: %w", err)
	}
	return totals, nil
}

func searchByNameQuery(term string) (string, []any) {
	sb := selectAll(productsTable, productColumns)
	sb.Where("name ILIKE " + sb.Var(containsPattern(term)))
	return sb.Build()
}

func paginateQuery(pageNumber, pageSize int) (string, []any, error) {
	offset, err := pageOffset(pageNumber, pageSize)
	if err != nil {
		return "", nil, err
	}

	sb := selectAll(productsTable, productColumns)
	sb.Limit(pageSize).Offset(offset)

	sql, args := sb.Build()
	return sql, args, nil
}

func addedSinceQuery(daysAgo float64) (string, []any, error) {
	if err := validDays(daysAgo); err != nil {
		return "", nil, err
	}

	sb := selectAll(productsTable, productColumns)
	sb.Where("date_added > now() - (" + sb.Var(daysAgo) + "::float8 * INTERVAL '1 day')")

	sql, args := sb.Build()
	return sql, args, nil
}

func totalCostByCategoryQuery() (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("category", "SUM(price) AS total").
		From(productsTable).
		GroupBy("category").
		OrderBy("total DESC", "category ASC")
	return sb.Build()
}
