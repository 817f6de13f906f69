package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is one entry of the portfolio's project catalogue.
type Project struct {
	ProjectID           uuid.UUID  `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	Description         string     `json:"description" db:"description"`
	DetailedDescription string     `json:"detailed_description" db:"detailed_description"`
	ImageURL            string     `json:"image_url" db:"image_url"`
	DemoURL             string     `json:"demo_url,omitempty" db:"demo_url"`
	GithubURL           string     `json:"github_url,omitempty" db:"github_url"`
	OrderIndex          int        `json:"order_index" db:"order_index"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	Categories          []Category `json:"categories"`
}

type Category struct {
	CategoryID uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Slug       string    `json:"slug" db:"slug"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// HasCategory reports whether the project is tagged with the given category slug.
func (p *Project) HasCategory(slug string) bool {
	for _, c := range p.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
