package handler

import (
	"github.com/deppfellow/blogful/internal/server"
	"github.com/deppfellow/blogful/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Articles *ArticleHandler
	Products *ProductHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Articles: NewArticleHandler(s, services.Articles),
		Products: NewProductHandler(s, services.Products),
	}
}
