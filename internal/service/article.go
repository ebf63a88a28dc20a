package service

import (
	"context"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
	"github.com/rs/zerolog"
)

// ArticleStore is the persistence the article service needs.
// *repository.ArticleRepository satisfies it.
type ArticleStore interface {
	ListAll(ctx context.Context) ([]model.Article, error)
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	Insert(ctx context.Context, in model.NewArticle) (*model.Article, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	UpdateByID(ctx context.Context, id int64, patch model.ArticlePatch) (int64, error)
}

type ArticleService struct {
	store ArticleStore
}

func NewArticleService(store ArticleStore) *ArticleService {
	return &ArticleService{store: store}
}

func articleNotFound() *errs.HTTPError {
	code := "ARTICLE_NOT_FOUND"
	return errs.NewNotFoundError("Article not found", true, &code)
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.store.ListAll(ctx)
}

func (s *ArticleService) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	article, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, articleNotFound()
	}
	return article, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, in model.NewArticle) (*model.Article, error) {
	article, err := s.store.Insert(ctx, in)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int64("article_id", article.ID).
		Msg("article created")
	return article, nil
}

// UpdateArticle applies patch and returns the stored result.
func (s *ArticleService) UpdateArticle(ctx context.Context, id int64, patch model.ArticlePatch) (*model.Article, error) {
	n, err := s.store.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, articleNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Int64("article_id", id).
		Msg("article updated")
	return s.GetArticle(ctx, id)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) error {
	n, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return articleNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Int64("article_id", id).
		Msg("article deleted")
	return nil
}
