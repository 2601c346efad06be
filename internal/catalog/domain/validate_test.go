package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Robertofsouzas/newsite/internal/validation"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestNewProjectValidate(t *testing.T) {
	valid := NewProject{
		Title:       "Sales Dashboard",
		Description: "Monthly sales KPIs",
		Type:        TypeDashboard,
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing required fields", func(t *testing.T) {
		err := NewProject{}.Validate()
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"title", "description", "type"}, fieldNames(t, err))
	})

	t.Run("blank title", func(t *testing.T) {
		in := valid
		in.Title = "   "
		assert.Contains(t, fieldNames(t, in.Validate()), "title")
	})

	t.Run("unknown type", func(t *testing.T) {
		in := valid
		in.Type = "blog"
		assert.Contains(t, fieldNames(t, in.Validate()), "type")
	})

	t.Run("bad image url", func(t *testing.T) {
		in := valid
		in.ImageURL = "not a url"
		assert.Contains(t, fieldNames(t, in.Validate()), "imageUrl")
	})

	t.Run("bad embed url", func(t *testing.T) {
		in := valid
		in.EmbedURL = "also not a url"
		assert.Contains(t, fieldNames(t, in.Validate()), "embedUrl")
	})
}

func TestProjectPatchValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, ProjectPatch{}.Validate())
	})

	t.Run("blank title rejected", func(t *testing.T) {
		title := ""
		err := ProjectPatch{Title: &title}.Validate()
		assert.Contains(t, fieldNames(t, err), "title")
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		typ := ProjectType("blog")
		err := ProjectPatch{Type: &typ}.Validate()
		assert.Contains(t, fieldNames(t, err), "type")
	})

	t.Run("clearing optional url allowed", func(t *testing.T) {
		empty := ""
		assert.NoError(t, ProjectPatch{ImageURL: &empty}.Validate())
	})
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sales-dashboard", Slugify("Sales Dashboard"))
	assert.Equal(t, "ai-agent-24-7", Slugify("AI Agent 24/7!"))
	assert.Equal(t, "relatorio", Slugify("--Relatorio--"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestPatchApplyLeavesAbsentFields(t *testing.T) {
	p := Project{
		Title:       "Original",
		Slug:        "original",
		Description: "desc",
		Type:        TypeDashboard,
		IsActive:    true,
	}

	title := "Renamed"
	ProjectPatch{Title: &title}.Apply(&p)

	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, "original", p.Slug)
	assert.Equal(t, "desc", p.Description)
	assert.Equal(t, TypeDashboard, p.Type)
	assert.True(t, p.IsActive)
}
