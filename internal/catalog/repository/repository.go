package repository

import (
	"context"
	"time"

	"github.com/Robertofsouzas/newsite/internal/catalog/domain"
)

// Repository is the persistence contract for projects. The Postgres and
// in-memory implementations must be interchangeable in observable
// behavior, including ordering and partial-update semantics.
type Repository interface {
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListActive(ctx context.Context) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	ListByType(ctx context.Context, t domain.ProjectType) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch, now time.Time) (domain.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}
