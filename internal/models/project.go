package models

import (
	"time"
)

// Project represents a tenant's generated site
type Project struct {
	ID            string      `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Subdomain     *string     `json:"subdomain,omitempty" db:"subdomain"`
	CustomDomain  *string     `json:"custom_domain,omitempty" db:"custom_domain"`
	PublishedAt   *time.Time  `json:"published_at,omitempty" db:"published_at"`
	GeneratedHTML string      `json:"-" db:"generated_html"`
	Content       ContentData `json:"content_data" db:"-"` // Stored as JSONB in DB
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// ContentData is the business profile captured during site generation
type ContentData struct {
	BusinessName string `json:"businessName"`
	PrimaryColor string `json:"primaryColor"`
	Description  string `json:"description,omitempty"`
}

// IsPublished reports whether the project is publicly servable
func (p *Project) IsPublished() bool {
	return p.PublishedAt != nil
}

// BusinessName returns the display name for composed pages, falling back
// to the project name when the content profile has none
func (p *Project) BusinessName() string {
	if p.Content.BusinessName != "" {
		return p.Content.BusinessName
	}
	return p.Name
}
