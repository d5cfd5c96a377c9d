// Package blog implements the in-memory filtering and search applied to a
// tenant's published posts, shared by the public blog index and the
// dashboard listing API.
package blog

import (
	"sort"
	"strings"

	"github.com/tenant-site-server/internal/models"
)

// Filter holds the optional predicates applied to a post collection.
// All supplied predicates combine with AND; zero values are ignored.
type Filter struct {
	// Query matches case-insensitively as a substring of title, excerpt,
	// or content
	Query string
	// CategorySlug matches the post's category slug exactly
	CategorySlug string
	// Tag matches exactly against the post's parsed tag set
	Tag string
}

// IsZero reports whether no predicate is supplied
func (f Filter) IsZero() bool {
	return f.Query == "" && f.CategorySlug == "" && f.Tag == ""
}

// Apply filters posts by the supplied predicates and returns the matches
// sorted by publish date, newest first. Posts without a publish date sort
// last. The input slice is not modified.
func Apply(posts []*models.BlogPost, f Filter) []*models.BlogPost {
	matched := make([]*models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if matches(post, f) {
			matched = append(matched, post)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].PublishedAt, matched[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return matched
}

func matches(post *models.BlogPost, f Filter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(post.Title), q) &&
			!strings.Contains(strings.ToLower(post.Excerpt), q) &&
			!strings.Contains(strings.ToLower(post.Content), q) {
			return false
		}
	}

	if f.CategorySlug != "" && post.CategorySlug() != f.CategorySlug {
		return false
	}

	if f.Tag != "" {
		found := false
		for _, tag := range post.TagList() {
			if tag == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// TagCloud returns the sorted set of distinct tags across all posts.
// Comparison is case-sensitive and independent of any active filter.
func TagCloud(posts []*models.BlogPost) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, post := range posts {
		for _, tag := range post.TagList() {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
