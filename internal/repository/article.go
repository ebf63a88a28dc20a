package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
)

// ArticleRepository is CRUD over blogful_articles.
type ArticleRepository struct {
	db DBTX
}

// NewArticleRepository creates an ArticleRepository over db.
func NewArticleRepository(db DBTX) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ListAll returns every article in insertion order.
func (r *ArticleRepository) ListAll(ctx context.Context) ([]model.Article, error) {
	sql, args := selectAll(articlesTable, articleColumns).Build()

	articles, err := queryAll[model.Article](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetByID returns the article with the given id, or nil when there is none.
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	sql, args := selectByID(articlesTable, articleColumns, id)

	article, err := queryOne[model.Article](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

// Insert persists a new article and returns it with its assigned id.
func (r *ArticleRepository) Insert(ctx context.Context, in model.NewArticle) (*model.Article, error) {
	set := []assignment{
		{column: "title", value: in.Title},
		{column: "content", value: in.Content},
	}
	if in.DatePublished != nil {
		set = append(set, assignment{column: "date_published", value: *in.DatePublished})
	}

	sql, args := insertReturning(articlesTable, set, articleColumns)

	article, err := queryOne[model.Article](ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return article, nil
}

// DeleteByID removes the article and returns how many rows went away (0 or 1).
func (r *ArticleRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	sql, args := deleteByID(articlesTable, id)

	n, err := execAffected(ctx, r.db, sql, args)
	if err != nil {
		return 0, fmt.Errorf("delete article %d: %w", id, err)
	}
	return n, nil
}

// UpdateByID applies patch to the article and returns the affected-count.
// Fields left nil keep their stored values.
func (r *ArticleRepository) UpdateByID(ctx context.Context, id int64, patch model.ArticlePatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, fmt.Errorf("update article %d: %w", id, errs.InvalidArgument("patch", "no fields to update"))
	}

	var set []assignment
	if patch.Title != nil {
		set = append(set, assignment{column: "title", value: *patch.Title})
	}
	if patch.Content != nil {
		set = append(set, assignment{column: "content", value: *patch.Content})
	}
	if patch.DatePublished != nil {
		set = append(set, assignment{column: "date_published", value: *patch.DatePublished})
	}

	sql, args := updateByID(articlesTable, set, id)

	n, err := execAffected(ctx, r.db, sql, args)
	if err != nil {
		return 0, fmt.Errorf("update article %d: %w", id, err)
	}
	return n, nil
}
