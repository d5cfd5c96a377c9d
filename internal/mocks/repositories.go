package mocks

import (
	"context"
	"sort"

	"github.com/tenant-site-server/internal/models"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	Projects    map[string]*models.Project // keyed by id
	LookupError error
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[string]*models.Project),
	}
}

func (m *MockProjectRepository) Add(projects ...*models.Project) {
	for _, p := range projects {
		m.Projects[p.ID] = p
	}
}

func (m *MockProjectRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Project, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	for _, p := range m.Projects {
		if p.Subdomain != nil && *p.Subdomain == subdomain && p.IsPublished() {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockProjectRepository) GetByCustomDomain(ctx context.Context, domain string) (*models.Project, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	for _, p := range m.Projects {
		if p.CustomDomain != nil && *p.CustomDomain == domain && p.IsPublished() {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	return m.Projects[id], nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int, error) {
	if m.LookupError != nil {
		return 0, m.LookupError
	}
	return len(m.Projects), nil
}

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	Posts       []*models.BlogPost
	Categories  []*models.BlogCategory
	LookupError error
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

// ListPublished mirrors the real query: published posts only, newest
// first, missing publish dates last
func (m *MockBlogRepository) ListPublished(ctx context.Context, projectID string) ([]*models.BlogPost, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	var posts []*models.BlogPost
	for _, p := range m.Posts {
		if p.ProjectID == projectID && p.Status == models.PostStatusPublished {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].PublishedAt, posts[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return posts, nil
}

func (m *MockBlogRepository) GetPublishedBySlug(ctx context.Context, projectID, slug string) (*models.BlogPost, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	for _, p := range m.Posts {
		if p.ProjectID == projectID && p.Slug == slug && p.Status == models.PostStatusPublished {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) CountPublished(ctx context.Context, projectID string) (int, error) {
	if m.LookupError != nil {
		return 0, m.LookupError
	}
	count := 0
	for _, p := range m.Posts {
		if p.ProjectID == projectID && p.Status == models.PostStatusPublished {
			count++
		}
	}
	return count, nil
}

func (m *MockBlogRepository) ListCategories(ctx context.Context, projectID string) ([]*models.BlogCategory, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	var categories []*models.BlogCategory
	for _, c := range m.Categories {
		if c.ProjectID == projectID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}
