package domain

import (
	"regexp"
	"strings"

	"github.com/Robertofsouzas/newsite/internal/validation"
)

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-friendly slug from a title: lowercase, runs of
// non-alphanumerics collapsed to "-", leading/trailing dashes trimmed.
func Slugify(title string) string {
	s := slugCleanup.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// Validate checks a create input, collecting every violated field.
func (in NewProject) Validate() error {
	verr := &validation.Error{}

	if strings.TrimSpace(in.Title) == "" {
		verr.Add("title", "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "description is required")
	}
	if in.Type == "" {
		verr.Add("type", "type is required")
	} else if !in.Type.Valid() {
		verr.Add("type", "type must be one of: dashboard, automation, ai-agent")
	}
	if in.ImageURL != "" && !validation.IsURL(in.ImageURL) {
		verr.Add("imageUrl", "imageUrl must be a valid URL")
	}
	if in.EmbedURL != "" && !validation.IsURL(in.EmbedURL) {
		verr.Add("embedUrl", "embedUrl must be a valid URL")
	}

	return verr.OrNil()
}

// Validate checks only the fields present in the patch; absent fields
// mean "leave unchanged" and are never flagged.
func (patch ProjectPatch) Validate() error {
	verr := &validation.Error{}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		verr.Add("title", "title must not be empty")
	}
	if patch.Slug != nil && strings.TrimSpace(*patch.Slug) == "" {
		verr.Add("slug", "slug must not be empty")
	}
	if patch.Type != nil && !patch.Type.Valid() {
		verr.Add("type", "type must be one of: dashboard, automation, ai-agent")
	}
	if patch.ImageURL != nil && *patch.ImageURL != "" && !validation.IsURL(*patch.ImageURL) {
		verr.Add("imageUrl", "imageUrl must be a valid URL")
	}
	if patch.EmbedURL != nil && *patch.EmbedURL != "" && !validation.IsURL(*patch.EmbedURL) {
		verr.Add("embedUrl", "embedUrl must be a valid URL")
	}

	return verr.OrNil()
}
