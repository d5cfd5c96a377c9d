package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tenant-site-server/internal/database"
	"github.com/tenant-site-server/internal/models"
)

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `
	id, name, subdomain, custom_domain, published_at, generated_html, content_data, created_at, updated_at
`

// GetBySubdomain retrieves a published project by its subdomain
func (r *projectRepo) GetBySubdomain(ctx context.Context, subdomain string) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE subdomain = $1 AND published_at IS NOT NULL
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, subdomain))
}

// GetByCustomDomain retrieves a published project by its custom domain
func (r *projectRepo) GetByCustomDomain(ctx context.Context, domain string) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE custom_domain = $1 AND published_at IS NOT NULL
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, domain))
}

// GetByID retrieves a project by ID regardless of publish state.
// The dashboard preview surface renders unpublished projects too.
func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Count returns the total number of projects
func (r *projectRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

func (r *projectRepo) scanOne(row *sql.Row) (*models.Project, error) {
	var project models.Project
	var subdomain, customDomain sql.NullString
	var publishedAt sql.NullTime
	var generatedHTML sql.NullString
	var contentJSON []byte

	err := row.Scan(
		&project.ID, &project.Name, &subdomain, &customDomain, &publishedAt,
		&generatedHTML, &contentJSON, &project.CreatedAt, &project.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if subdomain.Valid {
		project.Subdomain = &subdomain.String
	}
	if customDomain.Valid {
		project.CustomDomain = &customDomain.String
	}
	if publishedAt.Valid {
		project.PublishedAt = &publishedAt.Time
	}
	if generatedHTML.Valid {
		project.GeneratedHTML = generatedHTML.String
	}
	if err := decodeContentData(contentJSON, &project); err != nil {
		return nil, err
	}

	return &project, nil
}

// decodeContentData fills the project's content profile from the JSONB
// column. An empty column is fine; malformed JSON is a data error and
// surfaces as one.
func decodeContentData(raw []byte, project *models.Project) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &project.Content); err != nil {
		return fmt.Errorf("failed to decode content data for project %s: %w", project.ID, err)
	}
	return nil
}
