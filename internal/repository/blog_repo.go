package repository

import (
	"context"
	"database/sql"

	"github.com/tenant-site-server/internal/database"
	"github.com/tenant-site-server/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

const postColumns = `
	p.id, p.project_id, p.category_id, p.title, p.slug, p.excerpt, p.content,
	p.cover_image, p.status, p.published_at, p.meta_title, p.meta_description,
	p.tags, p.created_at, p.updated_at,
	c.id, c.name, c.slug
`

const postFrom = `
	FROM blog_posts p
	LEFT JOIN blog_categories c ON c.id = p.category_id
`

// ListPublished retrieves all published posts for a project, newest first
func (r *blogRepo) ListPublished(ctx context.Context, projectID string) ([]*models.BlogPost, error) {
	query := `
		SELECT ` + postColumns + postFrom + `
		WHERE p.project_id = $1 AND p.status = 'PUBLISHED'
		ORDER BY p.published_at DESC NULLS LAST
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPublishedBySlug retrieves a single published post by slug within a project
func (r *blogRepo) GetPublishedBySlug(ctx context.Context, projectID, slug string) (*models.BlogPost, error) {
	query := `
		SELECT ` + postColumns + postFrom + `
		WHERE p.project_id = $1 AND p.slug = $2 AND p.status = 'PUBLISHED'
	`
	row := r.db.QueryRowContext(ctx, query, projectID, slug)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// CountPublished returns the number of published posts for a project
func (r *blogRepo) CountPublished(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM blog_posts WHERE project_id = $1 AND status = 'PUBLISHED'",
		projectID,
	).Scan(&count)
	return count, err
}

// ListCategories retrieves a project's categories with published post counts
func (r *blogRepo) ListCategories(ctx context.Context, projectID string) ([]*models.BlogCategory, error) {
	query := `
		SELECT c.id, c.project_id, c.name, c.slug,
		       COUNT(p.id) FILTER (WHERE p.status = 'PUBLISHED') AS post_count
		FROM blog_categories c
		LEFT JOIN blog_posts p ON p.category_id = c.id
		WHERE c.project_id = $1
		GROUP BY c.id, c.project_id, c.name, c.slug
		ORDER BY c.name
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.BlogCategory
	for rows.Next() {
		var cat models.BlogCategory
		if err := rows.Scan(&cat.ID, &cat.ProjectID, &cat.Name, &cat.Slug, &cat.PostCount); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}
	return categories, rows.Err()
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.BlogPost, error) {
	var post models.BlogPost
	var categoryID, coverImage sql.NullString
	var publishedAt sql.NullTime
	var catID, catName, catSlug sql.NullString

	err := row.Scan(
		&post.ID, &post.ProjectID, &categoryID, &post.Title, &post.Slug,
		&post.Excerpt, &post.Content, &coverImage, &post.Status, &publishedAt,
		&post.MetaTitle, &post.MetaDescription, &post.Tags,
		&post.CreatedAt, &post.UpdatedAt,
		&catID, &catName, &catSlug,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		post.CategoryID = &categoryID.String
	}
	if coverImage.Valid {
		post.CoverImage = &coverImage.String
	}
	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}
	if catID.Valid {
		post.Category = &models.BlogCategory{
			ID:        catID.String,
			ProjectID: post.ProjectID,
			Name:      catName.String,
			Slug:      catSlug.String,
		}
	}

	return &post, nil
}
