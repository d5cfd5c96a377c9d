package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/blog"
	"github.com/tenant-site-server/internal/config"
	"github.com/tenant-site-server/internal/mocks"
	"github.com/tenant-site-server/internal/models"
	"github.com/tenant-site-server/internal/repository"
	"github.com/tenant-site-server/internal/service"
)

func setupService() (service.SiteService, *mocks.MockProjectRepository, *mocks.MockBlogRepository) {
	mockProjects := mocks.NewMockProjectRepository()
	mockBlog := mocks.NewMockBlogRepository()

	repos := &repository.Repositories{Project: mockProjects, Blog: mockBlog}
	cfg := &config.Config{
		Site: config.SiteConfig{
			DefaultPrimaryColor: "#22c55e",
			RelatedPostsLimit:   3,
			ChromeCacheSize:     16,
		},
	}

	services := service.NewServices(repos, cfg, zerolog.Nop())
	return services.Site, mockProjects, mockBlog
}

func project(subdomain string) *models.Project {
	now := time.Now()
	return &models.Project{
		ID:            "proj-1",
		Name:          "acme",
		Subdomain:     &subdomain,
		PublishedAt:   &now,
		GeneratedHTML: "<header>H</header><footer>F</footer>",
	}
}

func TestResolveHost_NormalizesHostname(t *testing.T) {
	site, mockProjects, _ := setupService()
	mockProjects.Add(project("acme.sites.test"))

	tests := []struct {
		name string
		host string
	}{
		{"exact", "acme.sites.test"},
		{"uppercase", "ACME.Sites.TEST"},
		{"with port", "acme.sites.test:8080"},
		{"trailing dot", "acme.sites.test."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := site.ResolveHost(context.Background(), tt.host)
			if err != nil {
				t.Fatalf("ResolveHost failed: %v", err)
			}
			if got == nil {
				t.Fatalf("Expected project for host %q", tt.host)
			}
			if got.ID != "proj-1" {
				t.Errorf("Expected proj-1, got %s", got.ID)
			}
		})
	}
}

func TestResolveHost_MissReturnsNilNotError(t *testing.T) {
	site, _, _ := setupService()

	got, err := site.ResolveHost(context.Background(), "unknown.test")
	if err != nil {
		t.Fatalf("A miss must not be an error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil project, got %v", got)
	}
}

func TestResolveHost_EmptyDocumentCountsAsMiss(t *testing.T) {
	site, mockProjects, _ := setupService()
	p := project("acme.sites.test")
	p.GeneratedHTML = ""
	mockProjects.Add(p)

	got, err := site.ResolveHost(context.Background(), "acme.sites.test")
	if err != nil {
		t.Fatalf("ResolveHost failed: %v", err)
	}
	if got != nil {
		t.Error("Project without generated document must not resolve")
	}
}

func TestRenderBlogPost_UnknownSlugReturnsEmpty(t *testing.T) {
	site, mockProjects, _ := setupService()
	p := project("acme.sites.test")
	mockProjects.Add(p)

	html, err := site.RenderBlogPost(context.Background(), p, "missing", "")
	if err != nil {
		t.Fatalf("Unknown slug must not be an error: %v", err)
	}
	if html != "" {
		t.Error("Expected empty result for unknown slug")
	}
}

func TestRenderHome_InjectionDependsOnPostCount(t *testing.T) {
	site, mockProjects, mockBlog := setupService()
	p := project("acme.sites.test")
	p.GeneratedHTML = `<a href="#top">Top</a>`
	mockProjects.Add(p)

	html, err := site.RenderHome(context.Background(), p, "")
	if err != nil {
		t.Fatalf("RenderHome failed: %v", err)
	}
	if strings.Contains(html, ">Blog</a>") {
		t.Error("No posts, no injected link")
	}

	now := time.Now()
	mockBlog.Posts = []*models.BlogPost{{
		ID: "p1", ProjectID: p.ID, Title: "T", Slug: "t",
		Status: models.PostStatusPublished, PublishedAt: &now,
	}}

	html, err = site.RenderHome(context.Background(), p, "")
	if err != nil {
		t.Fatalf("RenderHome failed: %v", err)
	}
	if !strings.Contains(html, ">Blog</a>") {
		t.Error("Expected injected blog link once a post is published")
	}
}

func TestListPosts_SharesFilterSemantics(t *testing.T) {
	site, mockProjects, mockBlog := setupService()
	p := project("acme.sites.test")
	mockProjects.Add(p)

	now := time.Now()
	earlier := now.Add(-time.Hour)
	mockBlog.Posts = []*models.BlogPost{
		{ID: "p1", ProjectID: p.ID, Title: "A", Slug: "a", Tags: "x",
			Status: models.PostStatusPublished, PublishedAt: &earlier},
		{ID: "p2", ProjectID: p.ID, Title: "B", Slug: "b", Tags: "x,y",
			Status: models.PostStatusPublished, PublishedAt: &now},
		{ID: "p3", ProjectID: p.ID, Title: "C", Slug: "c", Tags: "x",
			Status: models.PostStatusDraft},
	}

	posts, err := site.ListPosts(context.Background(), p, blog.Filter{Tag: "x"})
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 published matches, got %d", len(posts))
	}
	if posts[0].ID != "p2" || posts[1].ID != "p1" {
		t.Errorf("Expected newest-first ordering, got %s, %s", posts[0].ID, posts[1].ID)
	}
}
