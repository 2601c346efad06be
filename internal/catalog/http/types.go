package http

import "github.com/Robertofsouzas/newsite/internal/catalog/domain"

type createProjectReq struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Slug            string   `json:"slug"`
	FullDescription string   `json:"fullDescription"`
	ImageURL        string   `json:"imageUrl"`
	EmbedURL        string   `json:"embedUrl"`
	Benefits        string   `json:"benefits"`
	Technologies    []string `json:"technologies"`
	IsActive        *bool    `json:"isActive"`
	Featured        *bool    `json:"featured"`
}

func (r createProjectReq) toDomain() domain.NewProject {
	return domain.NewProject{
		Title:           r.Title,
		Description:     r.Description,
		Type:            domain.ProjectType(r.Type),
		Slug:            r.Slug,
		FullDescription: r.FullDescription,
		ImageURL:        r.ImageURL,
		EmbedURL:        r.EmbedURL,
		Benefits:        r.Benefits,
		Technologies:    r.Technologies,
		IsActive:        r.IsActive,
		Featured:        r.Featured,
	}
}

type updateProjectReq struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	Type            *string   `json:"type"`
	ImageURL        *string   `json:"imageUrl"`
	EmbedURL        *string   `json:"embedUrl"`
	Benefits        *string   `json:"benefits"`
	Technologies    *[]string `json:"technologies"`
	IsActive        *bool     `json:"isActive"`
	Featured        *bool     `json:"featured"`
}

func (r updateProjectReq) toDomain() domain.ProjectPatch {
	patch := domain.ProjectPatch{
		Title:           r.Title,
		Slug:            r.Slug,
		Description:     r.Description,
		FullDescription: r.FullDescription,
		ImageURL:        r.ImageURL,
		EmbedURL:        r.EmbedURL,
		Benefits:        r.Benefits,
		Technologies:    r.Technologies,
		IsActive:        r.IsActive,
		Featured:        r.Featured,
	}
	if r.Type != nil {
		t := domain.ProjectType(*r.Type)
		patch.Type = &t
	}
	return patch
}
