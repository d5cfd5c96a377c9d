package service

import (
	"context"
	"net"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/blog"
	"github.com/tenant-site-server/internal/composer"
	"github.com/tenant-site-server/internal/models"
	"github.com/tenant-site-server/internal/repository"
)

// siteService is the concrete implementation of SiteService
type siteService struct {
	repos    *repository.Repositories
	composer *composer.Composer
	log      zerolog.Logger
}

func newSiteService(repos *repository.Repositories, comp *composer.Composer, log zerolog.Logger) *siteService {
	return &siteService{
		repos:    repos,
		composer: comp,
		log:      log.With().Str("component", "site").Logger(),
	}
}

// ResolveHost maps an inbound hostname to a published project. Subdomain
// assignment wins over custom-domain assignment when both match. A project
// without a generated document counts as a miss: there is nothing to serve.
func (s *siteService) ResolveHost(ctx context.Context, host string) (*models.Project, error) {
	hostname := normalizeHost(host)
	if hostname == "" {
		return nil, nil
	}

	project, err := s.repos.Project.GetBySubdomain(ctx, hostname)
	if err != nil {
		return nil, err
	}
	if project == nil {
		project, err = s.repos.Project.GetByCustomDomain(ctx, hostname)
		if err != nil {
			return nil, err
		}
	}
	if project == nil {
		return nil, nil
	}
	if project.GeneratedHTML == "" {
		s.log.Debug().Str("host", hostname).Str("project_id", project.ID).
			Msg("Resolved project has no generated document")
		return nil, nil
	}
	return project, nil
}

// GetProject looks up a project by id for the dashboard preview surface.
// Unpublished projects resolve too; only a missing generated document
// counts as a miss.
func (s *siteService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repos.Project.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.GeneratedHTML == "" {
		return nil, nil
	}
	return project, nil
}

// RenderHome serves the tenant's generated document, injecting a Blog nav
// link when the tenant has published posts
func (s *siteService) RenderHome(ctx context.Context, project *models.Project, basePath string) (string, error) {
	count, err := s.repos.Blog.CountPublished(ctx, project.ID)
	if err != nil {
		return "", err
	}
	return s.composer.RenderHome(project.GeneratedHTML, count > 0, basePath), nil
}

// RenderBlogIndex composes the filtered blog listing page
func (s *siteService) RenderBlogIndex(ctx context.Context, project *models.Project, filter blog.Filter, basePath string) (string, error) {
	posts, err := s.repos.Blog.ListPublished(ctx, project.ID)
	if err != nil {
		return "", err
	}
	categories, err := s.repos.Blog.ListCategories(ctx, project.ID)
	if err != nil {
		return "", err
	}

	data := composer.IndexData{
		Posts:      blog.Apply(posts, filter),
		Categories: categories,
		// The tag cloud spans the whole published collection, not the
		// filtered view
		Tags:   blog.TagCloud(posts),
		Filter: filter,
	}
	return s.composer.RenderBlogIndex(project, data, basePath)
}

// RenderBlogPost composes a single post page, or returns "" when no
// published post carries the slug
func (s *siteService) RenderBlogPost(ctx context.Context, project *models.Project, slug, basePath string) (string, error) {
	post, err := s.repos.Blog.GetPublishedBySlug(ctx, project.ID, slug)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", nil
	}

	allPosts, err := s.repos.Blog.ListPublished(ctx, project.ID)
	if err != nil {
		return "", err
	}
	return s.composer.RenderBlogPost(project, post, allPosts, basePath)
}

// ListPosts returns the filtered published collection for the dashboard
// listing API, sharing the public index's filter semantics
func (s *siteService) ListPosts(ctx context.Context, project *models.Project, filter blog.Filter) ([]*models.BlogPost, error) {
	posts, err := s.repos.Blog.ListPublished(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	return blog.Apply(posts, filter), nil
}

// ProjectCount reports the total number of projects, exposed as a health
// detail and a cheap liveness probe of the store
func (s *siteService) ProjectCount(ctx context.Context) (int, error) {
	return s.repos.Project.Count(ctx)
}

// RenderNotFound returns the generic tenant-miss page
func (s *siteService) RenderNotFound(host string) string {
	return s.composer.RenderNotFound(normalizeHost(host))
}

// normalizeHost lowercases the hostname and strips any port and trailing
// dot. No punycode or wildcard handling; matching is exact.
func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
