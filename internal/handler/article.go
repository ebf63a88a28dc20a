package handler

import (
	"time"

	"github.com/deppfellow/blogful/internal/model"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/deppfellow/blogful/internal/service"
	"github.com/deppfellow/blogful/internal/validation"
	"github.com/labstack/echo/v4"
)

type ListArticlesRequest struct{}

func (r *ListArticlesRequest) Validate() error { return nil }

type ArticleIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *ArticleIDRequest) Validate() error {
	return validation.Struct(r)
}

type CreateArticleRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Content       string     `json:"content"`
	DatePublished *time.Time `json:"date_published"`
}

func (r *CreateArticleRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateArticleRequest carries a partial update; omitted fields stay as stored.
type UpdateArticleRequest struct {
	ID            int64      `param:"id" json:"-" validate:"required,min=1"`
	Title         *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Content       *string    `json:"content"`
	DatePublished *time.Time `json:"date_published"`
}

func (r *UpdateArticleRequest) Validate() error {
	return validation.Struct(r)
}

type ArticleHandler struct {
	Handler
	articles *service.ArticleService
}

func NewArticleHandler(s *server.Server, articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		Handler:  NewHandler(s),
		articles: articles,
	}
}

func (h *ArticleHandler) ListArticles(c echo.Context, _ *ListArticlesRequest) ([]model.Article, error) {
	return h.articles.ListArticles(c.Request().Context())
}

func (h *ArticleHandler) GetArticle(c echo.Context, req *ArticleIDRequest) (*model.Article, error) {
	return h.articles.GetArticle(c.Request().Context(), req.ID)
}

func (h *ArticleHandler) CreateArticle(c echo.Context, req *CreateArticleRequest) (*model.Article, error) {
	return h.articles.CreateArticle(c.Request().Context(), model.NewArticle{
		Title:         req.Title,
		Content:       req.Content,
		DatePublished: req.DatePublished,
	})
}

func (h *ArticleHandler) UpdateArticle(c echo.Context, req *UpdateArticleRequest) (*model.Article, error) {
	return h.articles.UpdateArticle(c.Request().Context(), req.ID, model.ArticlePatch{
		Title:         req.Title,
		Content:       req.Content,
		DatePublished: req.DatePublished,
	})
}

func (h *ArticleHandler) DeleteArticle(c echo.Context, req *ArticleIDRequest) error {
	return h.articles.DeleteArticle(c.Request().Context(), req.ID)
}
