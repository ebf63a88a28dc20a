package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/blogful/internal/config"
	"github.com/deppfellow/blogful/internal/database"
	"github.com/deppfellow/blogful/internal/handler"
	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/deppfellow/blogful/internal/service"
	"github.com/deppfellow/blogful/internal/service/servicetest"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testRouter struct {
	echo     *echo.Echo
	articles *servicetest.MockArticleStore
	products *servicetest.MockProductStore
}

func setupTestRouter() *testRouter {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "local"}},
		Logger: &logger,
		DB:     &database.Database{},
	}

	articles := new(servicetest.MockArticleStore)
	products := new(servicetest.MockProductStore)
	services := &service.Services{
		Articles: service.NewArticleService(articles),
		Products: service.NewProductService(products),
	}

	return &testRouter{
		echo:     NewRouter(s, handler.NewHandlers(s, services)),
		articles: articles,
		products: products,
	}
}

func (r *testRouter) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewRouter_ProductReportsWinOverID(t *testing.T) {
	r := setupTestRouter()
	r.products.On("SearchByName", mock.Anything, "e").Return([]model.Product{}, nil)
	r.products.On("AddedSince", mock.Anything, float64(3)).Return([]model.Product{}, nil)
	r.products.On("TotalCostByCategory", mock.Anything).Return([]model.CategoryTotal{}, nil)
	r.products.On("GetByID", mock.Anything, int64(7)).Return(&model.Product{ID: 7}, nil)

	for _, target := range []string{
		"/api/v1/products/search?term=e",
		"/api/v1/products/recent?days=3",
		"/api/v1/products/category-totals",
		"/api/v1/products/7",
	} {
		rec := r.get(target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	r.products.AssertExpectations(t)
}

func TestNewRouter_Routes(t *testing.T) {
	r := setupTestRouter()

	routes := make(map[string]bool)
	for _, route := range r.echo.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /status",
		"GET /docs",
		"GET /docs/openapi.json",
		"GET /api/v1/articles",
		"POST /api/v1/articles",
		"GET /api/v1/articles/:id",
		"PATCH /api/v1/articles/:id",
		"DELETE /api/v1/articles/:id",
		"GET /api/v1/products",
		"POST /api/v1/products",
		"GET /api/v1/products/search",
		"GET /api/v1/products/recent",
		"GET /api/v1/products/category-totals",
		"GET /api/v1/products/:id",
		"PATCH /api/v1/products/:id",
		"DELETE /api/v1/products/:id",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r := setupTestRouter()

	rec := r.get("/api/v1/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}
