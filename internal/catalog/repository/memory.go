package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Robertofsouzas/newsite/internal/catalog/domain"
)

// Memory is the development backend: a mutex-guarded slice with the
// same observable behavior as Postgres. State is lost on restart.
type Memory struct {
	mu    sync.RWMutex
	items []domain.Project
}

func NewMemory(seed ...domain.Project) *Memory {
	m := &Memory{}
	for _, p := range seed {
		m.items = append(m.items, clone(p))
	}
	return m
}

func clone(p domain.Project) domain.Project {
	p.Technologies = append([]string(nil), p.Technologies...)
	return p
}

func (m *Memory) Create(_ context.Context, p domain.Project) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range m.items {
		if it.Slug == p.Slug {
			return domain.Project{}, domain.ErrSlugTaken
		}
	}
	m.items = append(m.items, clone(p))
	return clone(p), nil
}

func (m *Memory) List(ctx context.Context) ([]domain.Project, error) {
	return m.listWhere(func(domain.Project) bool { return true })
}

func (m *Memory) ListActive(ctx context.Context) ([]domain.Project, error) {
	return m.listWhere(func(p domain.Project) bool { return p.IsActive })
}

func (m *Memory) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	return m.listWhere(func(p domain.Project) bool { return p.Featured })
}

func (m *Memory) ListByType(ctx context.Context, t domain.ProjectType) ([]domain.Project, error) {
	return m.listWhere(func(p domain.Project) bool { return p.Type == t })
}

// listWhere returns matching projects newest-first. The stable sort
// keeps insertion order for equal timestamps, so repeated calls within
// one process never reorder ties.
func (m *Memory) listWhere(keep func(domain.Project) bool) ([]domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Project, 0, len(m.items))
	for _, p := range m.items {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetByID(_ context.Context, id string) (domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.items {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (m *Memory) GetBySlug(_ context.Context, slug string) (domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.items {
		if p.Slug == slug {
			return clone(p), nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (m *Memory) Update(_ context.Context, id string, patch domain.ProjectPatch, now time.Time) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if patch.Slug != nil {
			for _, other := range m.items {
				if other.ID != id && other.Slug == *patch.Slug {
					return domain.Project{}, domain.ErrSlugTaken
				}
			}
		}
		patch.Apply(&m.items[i])
		m.items[i].UpdatedAt = now
		return clone(m.items[i]), nil
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (m *Memory) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
