package router

import (
	"net/http"

	"github.com/deppfellow/blogful/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(g *echo.Group, h *handler.Handlers) {
	p := h.Products
	products := g.Group("/products")

	products.GET("", handler.Handle(p.Handler, p.ListProducts, http.StatusOK))
	products.POST("", handler.Handle(p.Handler, p.CreateProduct, http.StatusCreated))

	// Reports; static segments win over /:id in echo's router.
	products.GET("/search", handler.Handle(p.Handler, p.SearchProducts, http.StatusOK))
	products.GET("/recent", handler.Handle(p.Handler, p.RecentProducts, http.StatusOK))
	products.GET("/category-totals", handler.Handle(p.Handler, p.CategoryTotals, http.StatusOK))

	products.GET("/:id", handler.Handle(p.Handler, p.GetProduct, http.StatusOK))
	products.PATCH("/:id", handler.Handle(p.Handler, p.UpdateProduct, http.StatusOK))
	products.DELETE("/:id", handler.HandleNoContent(p.Handler, p.DeleteProduct, http.StatusNoContent))
}
