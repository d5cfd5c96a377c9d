package composer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/tenant-site-server/internal/blog"
	"github.com/tenant-site-server/internal/models"
)

// IndexData carries the tenant's blog collection into the index strategy.
// Posts are already filtered; Categories and Tags describe the whole
// published collection so chips and the tag cloud stay stable while
// filtering.
type IndexData struct {
	Posts      []*models.BlogPost
	Categories []*models.BlogCategory
	Tags       []string
	Filter     blog.Filter
}

// RenderBlogIndex composes the blog listing page: filter chips, tag cloud,
// the card grid (or an empty state), all wrapped in the tenant's chrome
// and brand color.
func (c *Composer) RenderBlogIndex(project *models.Project, data IndexData, basePath string) (string, error) {
	shell, dark := c.rendition(project, basePath)

	// Chips only for categories that have something to show
	categories := make([]*models.BlogCategory, 0, len(data.Categories))
	for _, cat := range data.Categories {
		if cat.PostCount > 0 {
			categories = append(categories, cat)
		}
	}

	description := project.Content.Description
	if description == "" {
		description = fmt.Sprintf("Latest posts from %s", project.BusinessName())
	}

	page := indexPage{
		basePage: basePage{
			ProjectID:       project.ID,
			BusinessName:    project.BusinessName(),
			Title:           fmt.Sprintf("Blog | %s", project.BusinessName()),
			MetaDescription: description,
			PrimaryColor:    c.brandColor(project),
			ThemeSeed:       themeAttr(dark),
			BasePath:        basePath,
			HeadContent:     template.HTML(shell.HeadContent),
			Header:          template.HTML(shell.Header),
			Footer:          template.HTML(shell.Footer),
		},
		Posts:        data.Posts,
		Categories:   categories,
		Tags:         data.Tags,
		Query:        data.Filter.Query,
		CategorySlug: data.Filter.CategorySlug,
		Tag:          data.Filter.Tag,
		ActiveFilter: activeFilterLabel(data.Filter, categories),
		Filtered:     !data.Filter.IsZero(),
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "index", page); err != nil {
		return "", fmt.Errorf("failed to render blog index: %w", err)
	}
	return buf.String(), nil
}

// activeFilterLabel describes the applied category or tag filter for the
// header line above the grid
func activeFilterLabel(f blog.Filter, categories []*models.BlogCategory) string {
	var parts []string
	if f.CategorySlug != "" {
		name := f.CategorySlug
		for _, cat := range categories {
			if cat.Slug == f.CategorySlug {
				name = cat.Name
				break
			}
		}
		parts = append(parts, fmt.Sprintf("Category: %s", name))
	}
	if f.Tag != "" {
		parts = append(parts, fmt.Sprintf("Tag: #%s", f.Tag))
	}
	return strings.Join(parts, " / ")
}
