package composer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/tenant-site-server/internal/models"
)

// RenderBlogPost composes a single post page: category badge, date, title,
// excerpt lede, the post's HTML content as-is, share buttons, tag links,
// and a related-posts section, all in the tenant's chrome. Post content is
// generated upstream and treated as trusted markup.
func (c *Composer) RenderBlogPost(project *models.Project, post *models.BlogPost, allPosts []*models.BlogPost, basePath string) (string, error) {
	shell, dark := c.rendition(project, basePath)

	title := post.MetaTitle
	if title == "" {
		title = fmt.Sprintf("%s | %s", post.Title, project.BusinessName())
	}
	description := post.MetaDescription
	if description == "" {
		description = post.Excerpt
	}
	ogImage := ""
	if post.CoverImage != nil {
		ogImage = *post.CoverImage
	}

	page := postPage{
		basePage: basePage{
			ProjectID:       project.ID,
			BusinessName:    project.BusinessName(),
			Title:           title,
			MetaDescription: description,
			OGImage:         ogImage,
			PrimaryColor:    c.brandColor(project),
			ThemeSeed:       themeAttr(dark),
			BasePath:        basePath,
			HeadContent:     template.HTML(shell.HeadContent),
			Header:          template.HTML(shell.Header),
			Footer:          template.HTML(shell.Footer),
		},
		Post:    post,
		Lede:    post.Excerpt,
		Content: template.HTML(post.Content),
		Related: relatedPosts(allPosts, post, c.relatedLimit),
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "post", page); err != nil {
		return "", fmt.Errorf("failed to render blog post %q: %w", post.Slug, err)
	}
	return buf.String(), nil
}

// relatedPosts picks the newest posts other than the current one.
// allPosts arrives newest-first from the repository.
func relatedPosts(allPosts []*models.BlogPost, current *models.BlogPost, limit int) []*models.BlogPost {
	if limit <= 0 {
		return nil
	}
	var related []*models.BlogPost
	for _, post := range allPosts {
		if post.Slug == current.Slug {
			continue
		}
		if len(related) == limit {
			break
		}
		related = append(related, post)
	}
	return related
}
