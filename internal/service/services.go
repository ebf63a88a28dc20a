package service

import (
	"github.com/deppfellow/blogful/internal/repository"
)

// Services groups every service the handlers depend on.
type Services struct {
	Articles *ArticleService
	Products *ProductService
}

// NewServices wires the services to their repositories.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Articles: NewArticleService(repos.Articles),
		Products: NewProductService(repos.Products),
	}
}
