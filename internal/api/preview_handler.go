package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/models"
	"github.com/tenant-site-server/internal/service"
)

// PreviewHandler serves the dashboard preview surface. It composes the
// same pages as the public handler but looks projects up by id, prefixes
// all generated links with /api/site/{id}, and disables caching so
// editors see their changes immediately.
type PreviewHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPreviewHandler creates a new PreviewHandler
func NewPreviewHandler(services *service.Services, log zerolog.Logger) *PreviewHandler {
	return &PreviewHandler{
		services: services,
		log:      log.With().Str("handler", "preview").Logger(),
	}
}

// Home handles GET /api/site/:id
func (h *PreviewHandler) Home(c *gin.Context) {
	project, base, ok := h.resolve(c)
	if !ok {
		return
	}

	html, err := h.services.Site.RenderHome(c.Request.Context(), project, base)
	if err != nil {
		h.fail(c, project, err, "Preview home composition failed")
		return
	}
	h.page(c, html)
}

// BlogIndex handles GET /api/site/:id/blog
func (h *PreviewHandler) BlogIndex(c *gin.Context) {
	project, base, ok := h.resolve(c)
	if !ok {
		return
	}

	html, err := h.services.Site.RenderBlogIndex(c.Request.Context(), project, filterFromQuery(c), base)
	if err != nil {
		h.fail(c, project, err, "Preview blog index composition failed")
		return
	}
	h.page(c, html)
}

// BlogPost handles GET /api/site/:id/blog/:slug
func (h *PreviewHandler) BlogPost(c *gin.Context) {
	project, base, ok := h.resolve(c)
	if !ok {
		return
	}

	html, err := h.services.Site.RenderBlogPost(c.Request.Context(), project, c.Param("slug"), base)
	if err != nil {
		h.fail(c, project, err, "Preview blog post composition failed")
		return
	}
	if html == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	h.page(c, html)
}

// ListPosts handles GET /api/site/:id/posts, the dashboard listing API.
// Filter semantics match the public blog index.
func (h *PreviewHandler) ListPosts(c *gin.Context) {
	project, _, ok := h.resolve(c)
	if !ok {
		return
	}

	posts, err := h.services.Site.ListPosts(c.Request.Context(), project, filterFromQuery(c))
	if err != nil {
		h.log.Error().Err(err).Str("project_id", project.ID).Msg("Post listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":     posts,
		"count":     len(posts),
		"published": project.IsPublished(),
	})
}

// resolve validates the id parameter and loads the project. On failure it
// writes the error response and returns ok=false.
func (h *PreviewHandler) resolve(c *gin.Context) (*models.Project, string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return nil, "", false
	}

	project, err := h.services.Site.GetProject(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("project_id", id).Msg("Project lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return nil, "", false
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return nil, "", false
	}
	return project, "/api/site/" + id, true
}

func (h *PreviewHandler) page(c *gin.Context, html string) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

func (h *PreviewHandler) fail(c *gin.Context, project *models.Project, err error, msg string) {
	h.log.Error().Err(err).Str("project_id", project.ID).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compose page"})
}
