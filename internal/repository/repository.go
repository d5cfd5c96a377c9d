package repository

import (
	"context"

	"github.com/tenant-site-server/internal/database"
	"github.com/tenant-site-server/internal/models"
)

// ProjectRepository defines the interface for project data operations.
// Lookups return (nil, nil) when no row matches; a miss is not an error.
type ProjectRepository interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Project, error)
	GetByCustomDomain(ctx context.Context, domain string) (*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Count(ctx context.Context) (int, error)
}

// BlogRepository defines the interface for blog post and category reads
type BlogRepository interface {
	ListPublished(ctx context.Context, projectID string) ([]*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, projectID, slug string) (*models.BlogPost, error)
	CountPublished(ctx context.Context, projectID string) (int, error)
	ListCategories(ctx context.Context, projectID string) ([]*models.BlogCategory, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Project ProjectRepository
	Blog    BlogRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Project: NewProjectRepo(db),
		Blog:    NewBlogRepo(db),
	}
}
