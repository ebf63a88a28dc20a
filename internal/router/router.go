// Package router builds the echo instance: global middleware, the error
// handler and every route group.
package router

import (
	"github.com/deppfellow/blogful/internal/handler"
	"github.com/deppfellow/blogful/internal/middleware"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes for s.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerArticleRoutes(v1, h)
	registerProductRoutes(v1, h)

	return router
}
