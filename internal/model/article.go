package model

import "time"

// Article is a row of blogful_articles.
type Article struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Content       string    `db:"content" json:"content"`
	DatePublished time.Time `db:"date_published" json:"date_published"`
}

// NewArticle carries the fields of an article to insert. The id is always
// assigned by the store. A nil DatePublished takes the column default.
type NewArticle struct {
	Title         string
	Content       string
	DatePublished *time.Time
}

// ArticlePatch is a partial replacement: nil fields are left untouched.
type ArticlePatch struct {
	Title         *string
	Content       *string
	DatePublished *time.Time
}

// IsEmpty reports whether the patch would change nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.DatePublished == nil
}
