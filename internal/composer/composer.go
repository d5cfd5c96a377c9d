// Package composer builds the virtual pages served on tenant domains: the
// home page, the blog index, and individual blog posts. Composed pages
// splice in the chrome extracted from the tenant's generated document and
// seed their color scheme from the detected theme, so synthesized pages
// look native to each site.
package composer

import (
	"fmt"
	"html/template"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/tenant-site-server/internal/chrome"
	"github.com/tenant-site-server/internal/config"
	"github.com/tenant-site-server/internal/models"
)

// Composer renders complete HTML documents for tenant projects. The same
// instance serves both the public surface and the dashboard preview; the
// basePath argument on each renderer prefixes all generated links
// ("" in public serving, "/api/site/{id}" in previews).
type Composer struct {
	cache        *chrome.Cache
	defaultColor string
	relatedLimit int
	log          zerolog.Logger
}

// New creates a Composer with the given site settings
func New(site *config.SiteConfig, log zerolog.Logger) *Composer {
	return &Composer{
		cache:        chrome.NewCache(site.ChromeCacheSize),
		defaultColor: site.DefaultPrimaryColor,
		relatedLimit: site.RelatedPostsLimit,
		log:          log.With().Str("component", "composer").Logger(),
	}
}

// hexColorRe accepts #rgb through #rrggbbaa
var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// brandColor returns the project's primary color when it is a plain hex
// value, otherwise the configured default. The value lands inside a
// <style> block, so anything structured is rejected rather than trusted.
func (c *Composer) brandColor(project *models.Project) template.CSS {
	color := project.Content.PrimaryColor
	if !hexColorRe.MatchString(color) {
		color = c.defaultColor
	}
	return template.CSS(color)
}

// rendition returns the extracted chrome and theme for the project's
// document, substituting the deterministic fallback chrome when the
// document yields no usable header or footer.
func (c *Composer) rendition(project *models.Project, basePath string) (chrome.ExtractedChrome, bool) {
	r := c.cache.Resolve(project.GeneratedHTML)
	shell := r.Chrome

	if shell.Header == "" {
		shell.Header = c.fallbackHeader(project, basePath)
	}
	if shell.Footer == "" {
		shell.Footer = c.fallbackFooter(project)
	}
	return shell, r.Dark
}

func (c *Composer) fallbackHeader(project *models.Project, basePath string) string {
	return fmt.Sprintf(
		`<header class="vp-fallback-header"><div class="vp-shell"><a class="vp-brand" href="%s/">%s</a><nav class="vp-fallback-nav"><a href="%s/">Home</a><a href="%s/blog">Blog</a></nav></div></header>`,
		basePath, template.HTMLEscapeString(project.BusinessName()), basePath, basePath,
	)
}

func (c *Composer) fallbackFooter(project *models.Project) string {
	return fmt.Sprintf(
		`<footer class="vp-fallback-footer"><div class="vp-shell"><p>&copy; %d %s. All rights reserved.</p></div></footer>`,
		time.Now().Year(), template.HTMLEscapeString(project.BusinessName()),
	)
}

// themeAttr converts the detected mode into the data-theme seed value.
// The client-side toggle overrides it from the visitor's stored preference.
func themeAttr(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// fmtDate renders publish dates on cards and post pages
func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("January 2, 2006")
}

// take returns at most n leading elements, for tag chips on cards
func take(n int, items []string) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
