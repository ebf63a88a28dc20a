package service

import (
	"context"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
	"github.com/rs/zerolog"
)

// ProductStore is the persistence the product service needs.
// *repository.ProductRepository satisfies it.
type ProductStore interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Insert(ctx context.Context, in model.NewProduct) (*model.Product, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	UpdateByID(ctx context.Context, id int64, patch model.ProductPatch) (int64, error)

	SearchByName(ctx context.Context, term string) ([]model.Product, error)
	Paginate(ctx context.Context, pageNumber, pageSize int) ([]model.Product, error)
	AddedSince(ctx context.Context, daysAgo float64) ([]model.Product, error)
	TotalCostByCategory(ctx context.Context) ([]model.CategoryTotal, error)
}

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func productNotFound() *errs.HTTPError {
	code := "PRODUCT_NOT_FOUND"
	return errs.NewNotFoundError("Product not found", true, &code)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.store.ListAll(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, productNotFound()
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	product, err := s.store.Insert(ctx, in)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int64("product_id", product.ID).
		Str("category", product.Category).
		Msg("product created")
	return product, nil
}

// UpdateProduct applies patch and returns the stored result.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	n, err := s.store.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, productNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Int64("product_id", id).
		Msg("product updated")
	return s.GetProduct(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	n, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return productNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Int64("product_id", id).
		Msg("product deleted")
	return nil
}

func (s *ProductService) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	return s.store.SearchByName(ctx, term)
}

func (s *ProductService) PageOfProducts(ctx context.Context, pageNumber, pageSize int) ([]model.Product, error) {
	return s.store.Paginate(ctx, pageNumber, pageSize)
}

func (s *ProductService) RecentProducts(ctx context.Context, daysAgo float64) ([]model.Product, error) {
	return s.store.AddedSince(ctx, daysAgo)
}

func (s *ProductService) CategoryTotals(ctx context.Context) ([]model.CategoryTotal, error) {
	return s.store.TotalCostByCategory(ctx)
}
