package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/blog"
	"github.com/tenant-site-server/internal/composer"
	"github.com/tenant-site-server/internal/config"
	"github.com/tenant-site-server/internal/models"
	"github.com/tenant-site-server/internal/repository"
)

// SiteService defines resolution and page composition for tenant sites.
// Resolution misses return (nil, nil); they are expected outcomes, not
// errors. RenderBlogPost returns "" when the slug is unknown.
type SiteService interface {
	ResolveHost(ctx context.Context, host string) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	RenderHome(ctx context.Context, project *models.Project, basePath string) (string, error)
	RenderBlogIndex(ctx context.Context, project *models.Project, filter blog.Filter, basePath string) (string, error)
	RenderBlogPost(ctx context.Context, project *models.Project, slug, basePath string) (string, error)
	ListPosts(ctx context.Context, project *models.Project, filter blog.Filter) ([]*models.BlogPost, error)
	ProjectCount(ctx context.Context) (int, error)
	RenderNotFound(host string) string
}

// Services holds all service interfaces
type Services struct {
	Site SiteService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Site: newSiteService(repos, composer.New(&cfg.Site, log), log),
	}
}
