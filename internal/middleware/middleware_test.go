package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/blogful/internal/config"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(serverCfg config.ServerConfig) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Server:  serverCfg,
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.RateLimit.Limit(),
	)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	return e
}

func doGet(e *echo.Echo, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer(config.ServerConfig{}))

	rec := doGet(e, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	rec = doGet(e, http.Header{RequestIDHeader: []string{"abc-123"}})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	e := newTestEcho(newTestServer(config.ServerConfig{RateLimit: 0.001, RateLimitBurst: 2}))

	assert.Equal(t, http.StatusOK, doGet(e, nil).Code)
	assert.Equal(t, http.StatusOK, doGet(e, nil).Code)

	rec := doGet(e, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimit_Disabled(t *testing.T) {
	e := newTestEcho(newTestServer(config.ServerConfig{}))

	for range 20 {
		require.Equal(t, http.StatusOK, doGet(e, nil).Code)
	}
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}
