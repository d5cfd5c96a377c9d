package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/blog"
	"github.com/tenant-site-server/internal/config"
	"github.com/tenant-site-server/internal/models"
	"github.com/tenant-site-server/internal/service"
)

const htmlContentType = "text/html; charset=utf-8"

const postNotFoundBody = `<!DOCTYPE html>
<html><head><title>404 - Post not found</title></head>
<body><h1>404</h1><p>Post not found.</p></body></html>`

const serverErrorBody = `<!DOCTYPE html>
<html><head><title>Something went wrong</title></head>
<body><h1>500</h1><p>Something went wrong. Please try again.</p></body></html>`

// SiteHandler serves composed tenant pages on the public surface.
// Dispatch runs on (hostname, path segments): "/" is the home page,
// "/blog" the index, "/blog/{slug}" a post, and any other shape falls
// back to home so deep links on a one-page site always show something.
type SiteHandler struct {
	services     *service.Services
	cacheControl string
	log          zerolog.Logger
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		services: services,
		cacheControl: fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
			int(cfg.Site.CacheMaxAge.Seconds()),
			int(cfg.Site.CacheStaleWhileRevalidate.Seconds())),
		log: log.With().Str("handler", "site").Logger(),
	}
}

// Serve handles every request not claimed by a platform route
func (h *SiteHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.Data(http.StatusMethodNotAllowed, htmlContentType, []byte("method not allowed"))
		return
	}

	ctx := c.Request.Context()
	host := c.Request.Host

	project, err := h.services.Site.ResolveHost(ctx, host)
	if err != nil {
		h.log.Error().Err(err).Str("host", host).Msg("Host resolution failed")
		c.Data(http.StatusInternalServerError, htmlContentType, []byte(serverErrorBody))
		return
	}
	if project == nil {
		// Tenant miss: styled 404, never cached
		c.Data(http.StatusNotFound, htmlContentType, []byte(h.services.Site.RenderNotFound(host)))
		return
	}

	segments := pathSegments(c.Request.URL.Path)
	switch {
	case len(segments) == 1 && segments[0] == "blog":
		h.blogIndex(c, project)
	case len(segments) == 2 && segments[0] == "blog":
		h.blogPost(c, project, segments[1])
	default:
		// Home, and the always-show-something fallback for unknown paths
		h.home(c, project)
	}
}

func (h *SiteHandler) home(c *gin.Context, project *models.Project) {
	html, err := h.services.Site.RenderHome(c.Request.Context(), project, "")
	if err != nil {
		h.fail(c, project, err, "Home composition failed")
		return
	}
	h.page(c, html)
}

func (h *SiteHandler) blogIndex(c *gin.Context, project *models.Project) {
	filter := filterFromQuery(c)
	html, err := h.services.Site.RenderBlogIndex(c.Request.Context(), project, filter, "")
	if err != nil {
		h.fail(c, project, err, "Blog index composition failed")
		return
	}
	h.page(c, html)
}

func (h *SiteHandler) blogPost(c *gin.Context, project *models.Project, slug string) {
	html, err := h.services.Site.RenderBlogPost(c.Request.Context(), project, slug, "")
	if err != nil {
		h.fail(c, project, err, "Blog post composition failed")
		return
	}
	if html == "" {
		c.Data(http.StatusNotFound, htmlContentType, []byte(postNotFoundBody))
		return
	}
	h.page(c, html)
}

// page writes a successfully composed document with the public cache
// policy: short-lived with background revalidation, so tenant edits
// propagate within about a minute without every request hitting the store
func (h *SiteHandler) page(c *gin.Context, html string) {
	c.Header("Cache-Control", h.cacheControl)
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

func (h *SiteHandler) fail(c *gin.Context, project *models.Project, err error, msg string) {
	h.log.Error().Err(err).Str("project_id", project.ID).Msg(msg)
	c.Data(http.StatusInternalServerError, htmlContentType, []byte(serverErrorBody))
}

// filterFromQuery reads the optional q/category/tag parameters
func filterFromQuery(c *gin.Context) blog.Filter {
	return blog.Filter{
		Query:        c.Query("q"),
		CategorySlug: c.Query("category"),
		Tag:          c.Query("tag"),
	}
}

// pathSegments splits a request path into its non-empty segments
func pathSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
