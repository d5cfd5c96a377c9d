package composer

import (
	"regexp"
	"strings"
)

// Anchor-scanning patterns for the home-page blog link injection. The last
// anchor whose href starts with "#" is treated as the final in-page nav
// link; the injected Blog link lands right after its closing tag and
// copies its class/style so it renders like a sibling.
var (
	hashAnchorRe  = regexp.MustCompile(`(?is)<a\b[^>]*href\s*=\s*["']#[^"']*["'][^>]*>`)
	anchorCloseRe = regexp.MustCompile(`(?i)</a\s*>`)
	classAttrRe   = regexp.MustCompile(`(?is)\bclass\s*=\s*("[^"]*"|'[^']*')`)
	styleAttrRe   = regexp.MustCompile(`(?is)\bstyle\s*=\s*("[^"]*"|'[^']*')`)
)

// RenderHome returns the tenant's generated document as-is. When the tenant
// has published posts, a Blog link is injected after the last in-page nav
// anchor so visitors can reach the blog index; a document without such an
// anchor is served unmodified.
func (c *Composer) RenderHome(doc string, hasPosts bool, basePath string) string {
	if !hasPosts {
		return doc
	}
	return injectBlogLink(doc, basePath)
}

func injectBlogLink(doc, basePath string) string {
	openings := hashAnchorRe.FindAllStringIndex(doc, -1)
	if openings == nil {
		return doc
	}
	last := openings[len(openings)-1]
	openTag := doc[last[0]:last[1]]

	closing := anchorCloseRe.FindStringIndex(doc[last[1]:])
	if closing == nil {
		return doc
	}
	at := last[1] + closing[1]

	var link strings.Builder
	link.WriteString(`<a href="`)
	link.WriteString(basePath)
	link.WriteString(`/blog"`)
	if m := classAttrRe.FindString(openTag); m != "" {
		link.WriteString(" ")
		link.WriteString(m)
	}
	if m := styleAttrRe.FindString(openTag); m != "" {
		link.WriteString(" ")
		link.WriteString(m)
	}
	link.WriteString(`>Blog</a>`)

	return doc[:at] + link.String() + doc[at:]
}
