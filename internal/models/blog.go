package models

import (
	"strings"
	"time"
)

// Blog post statuses
const (
	PostStatusDraft     = "DRAFT"
	PostStatusPublished = "PUBLISHED"
)

// BlogPost represents a blog post belonging to a project
type BlogPost struct {
	ID              string        `json:"id" db:"id"`
	ProjectID       string        `json:"project_id" db:"project_id"`
	CategoryID      *string       `json:"category_id,omitempty" db:"category_id"`
	Title           string        `json:"title" db:"title"`
	Slug            string        `json:"slug" db:"slug"`
	Excerpt         string        `json:"excerpt" db:"excerpt"`
	Content         string        `json:"content" db:"content"`
	CoverImage      *string       `json:"cover_image,omitempty" db:"cover_image"`
	Status          string        `json:"status" db:"status"`
	PublishedAt     *time.Time    `json:"published_at,omitempty" db:"published_at"`
	MetaTitle       string        `json:"meta_title" db:"meta_title"`
	MetaDescription string        `json:"meta_description" db:"meta_description"`
	Tags            string        `json:"tags" db:"tags"` // Comma-joined in DB
	Category        *BlogCategory `json:"category,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TagList parses the comma-joined tags column into a trimmed slice.
// Empty segments are dropped, so "a, ,b," yields ["a" "b"].
func (p *BlogPost) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CategorySlug returns the slug of the post's category, or "" when none
func (p *BlogPost) CategorySlug() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Slug
}

// BlogCategory groups posts within a project
type BlogCategory struct {
	ID        string `json:"id" db:"id"`
	ProjectID string `json:"project_id" db:"project_id"`
	Name      string `json:"name" db:"name"`
	Slug      string `json:"slug" db:"slug"`
	// PostCount is the number of published posts, derived for filter chips
	PostCount int `json:"post_count" db:"-"`
}
