package domain

import "time"

// ProjectType is the closed set of portfolio categories.
type ProjectType string

const (
	TypeDashboard  ProjectType = "dashboard"
	TypeAutomation ProjectType = "automation"
	TypeAIAgent    ProjectType = "ai-agent"
)

func (t ProjectType) Valid() bool {
	switch t {
	case TypeDashboard, TypeAutomation, TypeAIAgent:
		return true
	}
	return false
}

// Project is a catalog entry shown in the public portfolio or managed
// through the admin panel. It is storage-agnostic and used across the
// repository, service, and HTTP layers.
type Project struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Description     string      `json:"description"`
	FullDescription string      `json:"fullDescription,omitempty"`
	Type            ProjectType `json:"type"`
	ImageURL        string      `json:"imageUrl,omitempty"`
	EmbedURL        string      `json:"embedUrl,omitempty"`
	Benefits        string      `json:"benefits,omitempty"`
	Technologies    []string    `json:"technologies,omitempty"`
	IsActive        bool        `json:"isActive"`
	Featured        bool        `json:"featured"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// NewProject is the accepted input for creating a project. IsActive and
// Featured are pointers so "unspecified" can fall back to the defaults
// (active, not featured).
type NewProject struct {
	Title           string
	Description     string
	Type            ProjectType
	Slug            string
	FullDescription string
	ImageURL        string
	EmbedURL        string
	Benefits        string
	Technologies    []string
	IsActive        *bool
	Featured        *bool
}

// ProjectPatch is a partial update. Every field is a present/absent
// marker: a nil pointer leaves the stored value unchanged.
type ProjectPatch struct {
	Title           *string
	Slug            *string
	Description     *string
	FullDescription *string
	Type            *ProjectType
	ImageURL        *string
	EmbedURL        *string
	Benefits        *string
	Technologies    *[]string
	IsActive        *bool
	Featured        *bool
}

// Apply merges the patch into p, leaving absent fields untouched.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.FullDescription != nil {
		p.FullDescription = *patch.FullDescription
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.EmbedURL != nil {
		p.EmbedURL = *patch.EmbedURL
	}
	if patch.Benefits != nil {
		p.Benefits = *patch.Benefits
	}
	if patch.Technologies != nil {
		p.Technologies = append([]string(nil), (*patch.Technologies)...)
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}
