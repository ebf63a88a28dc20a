package repository

import (
	"github.com/deppfellow/blogful/internal/server"
)

// Repositories is the container for every repository instance.
type Repositories struct {
	Articles *ArticleRepository
	Products *ProductRepository
}

// NewRepositories builds the repositories over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithHandle(s.DB.Pool)
}

// NewRepositoriesWithHandle builds the repositories over an arbitrary handle,
// e.g. a transaction or a pool opened by the drills CLI.
func NewRepositoriesWithHandle(db DBTX) *Repositories {
	return &Repositories{
		Articles: NewArticleRepository(db),
		Products: NewProductRepository(db),
	}
}
