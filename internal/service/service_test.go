package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/service/servicetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireNotFound(t *testing.T, err error, code string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected HTTPError, got %v", err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
}

func TestArticleService_GetArticle(t *testing.T) {
	store := new(servicetest.MockArticleStore)
	svc := NewArticleService(store)
	ctx := context.Background()

	store.On("GetByID", mock.Anything, int64(1)).Return(&model.Article{ID: 1, Title: "hello"}, nil)
	store.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)

	article, err := svc.GetArticle(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", article.Title)

	_, err = svc.GetArticle(ctx, 999)
	requireNotFound(t, err, "ARTICLE_NOT_FOUND")

	store.AssertExpectations(t)
}

func TestArticleService_UpdateArticle(t *testing.T) {
	store := new(servicetest.MockArticleStore)
	svc := NewArticleService(store)
	ctx := context.Background()

	title := "updated"
	patch := model.ArticlePatch{Title: &title}

	store.On("UpdateByID", mock.Anything, int64(1), patch).Return(int64(1), nil)
	store.On("GetByID", mock.Anything, int64(1)).Return(&model.Article{ID: 1, Title: title}, nil)
	store.On("UpdateByID", mock.Anything, int64(999), patch).Return(int64(0), nil)

	article, err := svc.UpdateArticle(ctx, 1, patch)
	require.NoError(t, err)
	assert.Equal(t, title, article.Title)

	_, err = svc.UpdateArticle(ctx, 999, patch)
	requireNotFound(t, err, "ARTICLE_NOT_FOUND")
}

func TestArticleService_UpdateArticle_PassesInvalidArgument(t *testing.T) {
	store := new(servicetest.MockArticleStore)
	svc := NewArticleService(store)

	store.On("UpdateByID", mock.Anything, int64(1), model.ArticlePatch{}).
		Return(int64(0), errs.InvalidArgument("patch", "no fields to update"))

	_, err := svc.UpdateArticle(context.Background(), 1, model.ArticlePatch{})
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestArticleService_DeleteArticle(t *testing.T) {
	store := new(servicetest.MockArticleStore)
	svc := NewArticleService(store)
	ctx := context.Background()

	store.On("DeleteByID", mock.Anything, int64(1)).Return(int64(1), nil)
	store.On("DeleteByID", mock.Anything, int64(999)).Return(int64(0), nil)

	require.NoError(t, svc.DeleteArticle(ctx, 1))
	requireNotFound(t, svc.DeleteArticle(ctx, 999), "ARTICLE_NOT_FOUND")
}

func TestProductService_GetAndDelete(t *testing.T) {
	store := new(servicetest.MockProductStore)
	svc := NewProductService(store)
	ctx := context.Background()

	store.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)
	store.On("DeleteByID", mock.Anything, int64(999)).Return(int64(0), nil)

	_, err := svc.GetProduct(ctx, 999)
	requireNotFound(t, err, "PRODUCT_NOT_FOUND")
	requireNotFound(t, svc.DeleteProduct(ctx, 999), "PRODUCT_NOT_FOUND")
}

func TestProductService_CreateProduct_PassesConstraintViolation(t *testing.T) {
	store := new(servicetest.MockProductStore)
	svc := NewProductService(store)

	in := model.NewProduct{Name: "bad", Price: decimal.NewFromInt(-1), Category: "Main"}
	store.On("Insert", mock.Anything, in).Return(nil, errs.ErrConstraintViolation)

	_, err := svc.CreateProduct(context.Background(), in)
	assert.True(t, errors.Is(err, errs.ErrConstraintViolation))
}

func TestProductService_Reports(t *testing.T) {
	store := new(servicetest.MockProductStore)
	svc := NewProductService(store)
	ctx := context.Background()

	page := []model.Product{{ID: 7}, {ID: 8}}
	totals := []model.CategoryTotal{{Category: "Main", Total: decimal.RequireFromString("9.99")}}

	store.On("SearchByName", mock.Anything, "e").Return([]model.Product{{ID: 3}}, nil)
	store.On("Paginate", mock.Anything, 2, 6).Return(page, nil)
	store.On("AddedSince", mock.Anything, float64(30)).Return([]model.Product{}, nil)
	store.On("TotalCostByCategory", mock.Anything).Return(totals, nil)

	found, err := svc.SearchProducts(ctx, "e")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	got, err := svc.PageOfProducts(ctx, 2, 6)
	require.NoError(t, err)
	assert.Equal(t, page, got)

	recent, err := svc.RecentProducts(ctx, 30)
	require.NoError(t, err)
	assert.Empty(t, recent)

	gotTotals, err := svc.CategoryTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, totals, gotTotals)

	store.AssertExpectations(t)
}
