package handler

import (
	"time"

	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/repository"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/deppfellow/blogful/internal/service"
	"github.com/deppfellow/blogful/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ListProductsRequest lists every product, or one page of them when Page
// is set.
type ListProductsRequest struct {
	Page     int `query:"page" validate:"min=0"`
	PageSize int `query:"page_size" validate:"min=0,max=100"`
}

func (r *ListProductsRequest) Validate() error {
	return validation.Struct(r)
}

type ProductIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *ProductIDRequest) Validate() error {
	return validation.Struct(r)
}

type SearchProductsRequest struct {
	Term string `query:"term" validate:"max=255"`
}

func (r *SearchProductsRequest) Validate() error {
	return validation.Struct(r)
}

// RecentProductsRequest selects products added within the last Days days.
// Fractions of a day are allowed.
type RecentProductsRequest struct {
	Days float64 `query:"days" validate:"gte=0"`
}

func (r *RecentProductsRequest) Validate() error {
	return validation.Struct(r)
}

type CategoryTotalsRequest struct{}

func (r *CategoryTotalsRequest) Validate() error { return nil }

type CreateProductRequest struct {
	Name      string           `json:"name" validate:"required,max=255"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	DateAdded *time.Time       `json:"date_added"`
	Checked   bool             `json:"checked"`
	Category  string           `json:"category" validate:"required,max=100"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return validatePrice(r.Price)
}

// UpdateProductRequest carries a partial update; omitted fields stay as stored.
type UpdateProductRequest struct {
	ID        int64            `param:"id" json:"-" validate:"required,min=1"`
	Name      *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price     *decimal.Decimal `json:"price"`
	DateAdded *time.Time       `json:"date_added"`
	Checked   *bool            `json:"checked"`
	Category  *string          `json:"category" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateProductRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return validatePrice(r.Price)
}

func validatePrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return validation.CustomValidationErrors{{Field: "price", Message: "must not be negative"}}
	}
	return nil
}

type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, req *ListProductsRequest) ([]model.Product, error) {
	ctx := c.Request().Context()
	if req.Page == 0 {
		return h.products.ListProducts(ctx)
	}

	size := req.PageSize
	if size == 0 {
		size = repository.DefaultPageSize
	}
	return h.products.PageOfProducts(ctx, req.Page, size)
}

func (h *ProductHandler) GetProduct(c echo.Context, req *ProductIDRequest) (*model.Product, error) {
	return h.products.GetProduct(c.Request().Context(), req.ID)
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *CreateProductRequest) (*model.Product, error) {
	return h.products.CreateProduct(c.Request().Context(), model.NewProduct{
		Name:      req.Name,
		Price:     *req.Price,
		DateAdded: req.DateAdded,
		Checked:   req.Checked,
		Category:  req.Category,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context, req *UpdateProductRequest) (*model.Product, error) {
	return h.products.UpdateProduct(c.Request().Context(), req.ID, model.ProductPatch{
		Name:      req.Name,
		Price:     req.Price,
		DateAdded: req.DateAdded,
		Checked:   req.Checked,
		Category:  req.Category,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *ProductIDRequest) error {
	return h.products.DeleteProduct(c.Request().Context(), req.ID)
}

func (h *ProductHandler) SearchProducts(c echo.Context, req *SearchProductsRequest) ([]model.Product, error) {
	return h.products.SearchProducts(c.Request().Context(), req.Term)
}

func (h *ProductHandler) RecentProducts(c echo.Context, req *RecentProductsRequest) ([]model.Product, error) {
	return h.products.RecentProducts(c.Request().Context(), req.Days)
}

func (h *ProductHandler) CategoryTotals(c echo.Context, _ *CategoryTotalsRequest) ([]model.CategoryTotal, error) {
	return h.products.CategoryTotals(c.Request().Context())
}
