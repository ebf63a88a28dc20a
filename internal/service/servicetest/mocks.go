// Package servicetest provides testify mocks of the service stores.
package servicetest

import (
	"context"

	"github.com/deppfellow/blogful/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockArticleStore is a mock implementation of service.ArticleStore.
type MockArticleStore struct {
	mock.Mock
}

func (m *MockArticleStore) ListAll(ctx context.Context) ([]model.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticleStore) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleStore) Insert(ctx context.Context, in model.NewArticle) (*model.Article, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleStore) UpdateByID(ctx context.Context, id int64, patch model.ArticlePatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductStore is a mock implementation of service.ProductStore.
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) products(args mock.Arguments) ([]model.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) ListAll(ctx context.Context) ([]model.Product, error) {
	return m.products(m.Called(ctx))
}

func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) Insert(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductStore) UpdateByID(ctx context.Context, id int64, patch model.ProductPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductStore) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	return m.products(m.Called(ctx, term))
}

func (m *MockProductStore) Paginate(ctx context.Context, pageNumber, pageSize int) ([]model.Product, error) {
	return m.products(m.Called(ctx, pageNumber, pageSize))
}

func (m *MockProductStore) AddedSince(ctx context.Context, daysAgo float64) ([]model.Product, error) {
	return m.products(m.Called(ctx, daysAgo))
}

func (m *MockProductStore) TotalCostByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryTotal), args.Error(1)
}
