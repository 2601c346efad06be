package about

import (
	"errors"
	"strings"
	"time"

	"github.com/Robertofsouzas/newsite/internal/validation"
)

var ErrNotFound = errors.New("about entry not found")

// Entry is a block of "about us" content rendered on the public site.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Paragraphs  []string  `json:"paragraphs,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Paragraphs  []string `json:"paragraphs"`
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Paragraphs  *[]string `json:"paragraphs"`
}

func (in NewEntry) Validate() error {
	verr := &validation.Error{}
	if strings.TrimSpace(in.Title) == "" {
		verr.Add("title", "title is required")
	}
	return verr.OrNil()
}

func (p Patch) Validate() error {
	verr := &validation.Error{}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		verr.Add("title", "title must not be empty")
	}
	return verr.OrNil()
}

func (p Patch) apply(e *Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Paragraphs != nil {
		e.Paragraphs = append([]string(nil), (*p.Paragraphs)...)
	}
}
