package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Robertofsouzas/newsite/internal/catalog/domain"
	"github.com/Robertofsouzas/newsite/internal/catalog/repository"
)

// Service enforces project invariants and mediates every read/write
// against the persistence backend.
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates the input, assigns id/slug/timestamps and defaults,
// and persists the record.
func (s *Service) Create(ctx context.Context, in domain.NewProject) (domain.Project, error) {
	if err := in.Validate(); err != nil {
		return domain.Project{}, err
	}

	now := s.now().UTC()
	p := domain.Project{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Slug:            in.Slug,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		Type:            in.Type,
		ImageURL:        in.ImageURL,
		EmbedURL:        in.EmbedURL,
		Benefits:        in.Benefits,
		Technologies:    in.Technologies,
		IsActive:        true,
		Featured:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if p.Slug == "" {
		p.Slug = domain.Slugify(in.Title)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	return s.repo.Create(ctx, p)
}

// List returns every project, newest first. Admin-only at the HTTP
// boundary; the public feeds are ListActive and ListFeatured.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) ListByType(ctx context.Context, t domain.ProjectType) ([]domain.Project, error) {
	return s.repo.ListByType(ctx, t)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Update applies a partial update: only fields present in the patch are
// validated and written, and updatedAt is refreshed on success.
func (s *Service) Update(ctx context.Context, id string, patch domain.ProjectPatch) (domain.Project, error) {
	if err := patch.Validate(); err != nil {
		return domain.Project{}, err
	}
	return s.repo.Update(ctx, id, patch, s.now().UTC())
}

// Delete reports whether a record was actually removed; a missing id is
// false, not an error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
