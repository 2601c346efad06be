package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Robertofsouzas/newsite/internal/catalog/domain"
	"github.com/Robertofsouzas/newsite/internal/catalog/repository"
	"github.com/Robertofsouzas/newsite/internal/validation"
)

func newTestService() *Service {
	return New(repository.NewMemory())
}

func validInput() domain.NewProject {
	return domain.NewProject{
		Title:       "Sales Dashboard",
		Description: "Monthly sales KPIs",
		Type:        domain.TypeDashboard,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	p, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "sales-dashboard", p.Slug)
	assert.True(t, p.IsActive)
	assert.False(t, p.Featured)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreateHonorsExplicitFlags(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	inactive := false
	featured := true
	in := validInput()
	in.IsActive = &inactive
	in.Featured = &featured

	p, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.True(t, p.Featured)
}

func TestCreateValidationError(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), domain.NewProject{Type: domain.TypeDashboard})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Fields)
}

func TestListActiveTracksIsActive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	p, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	inactive := false
	_, err = svc.Update(ctx, p.ID, domain.ProjectPatch{IsActive: &inactive})
	require.NoError(t, err)

	active, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active, "deactivated project must leave the public feed immediately")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "admin listing still includes inactive projects")
}

func TestUpdateEmptyPatchOnlyTouchesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	svc := New(repo)

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	later := created.UpdatedAt.Add(2 * time.Second)
	svc.now = func() time.Time { return later }

	updated, err := svc.Update(ctx, created.ID, domain.ProjectPatch{})
	require.NoError(t, err)

	assert.Equal(t, later, updated.UpdatedAt)
	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, updated, "every other field must be byte-identical")
}

func TestUpdateValidatesSuppliedFieldsOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	bad := "not a url"
	_, err = svc.Update(ctx, created.ID, domain.ProjectPatch{ImageURL: &bad})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))

	// the stored record is untouched after a failed update
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.Update(context.Background(), "6f1b0f5e-0000-0000-0000-000000000000", domain.ProjectPatch{})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	removed, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCreateCustomSlugKept(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	in := validInput()
	in.Slug = "custom-slug"
	p, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", p.Slug)

	got, err := svc.GetBySlug(ctx, "custom-slug")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}
