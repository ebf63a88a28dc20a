package router

import (
	"net/http"

	"github.com/deppfellow/blogful/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(g *echo.Group, h *handler.Handlers) {
	a := h.Articles
	articles := g.Group("/articles")

	articles.GET("", handler.Handle(a.Handler, a.ListArticles, http.StatusOK))
	articles.POST("", handler.Handle(a.Handler, a.CreateArticle, http.StatusCreated))
	articles.GET("/:id", handler.Handle(a.Handler, a.GetArticle, http.StatusOK))
	articles.PATCH("/:id", handler.Handle(a.Handler, a.UpdateArticle, http.StatusOK))
	articles.DELETE("/:id", handler.HandleNoContent(a.Handler, a.DeleteArticle, http.StatusNoContent))
}
