package about

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoUpdatePreservesOmittedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	created, err := repo.Create(ctx, Entry{
		ID:          uuid.NewString(),
		Title:       "Who we are",
		Description: "A data consultancy",
		Paragraphs:  []string{"first", "second"},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	later := now.Add(time.Minute)
	title := "About us"
	updated, err := repo.Update(ctx, created.ID, Patch{Title: &title}, later)
	require.NoError(t, err)

	assert.Equal(t, "About us", updated.Title)
	assert.Equal(t, "A data consultancy", updated.Description)
	assert.Equal(t, []string{"first", "second"}, updated.Paragraphs)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, now, updated.CreatedAt)
}

func TestMemoryRepoUpdateNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Update(context.Background(), uuid.NewString(), Patch{}, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func newAboutRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	pass := func(c *gin.Context) { c.Next() }
	Register(r.Group("/api"), NewMemoryRepo(), pass)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAboutEndpoints(t *testing.T) {
	r := newAboutRouter()

	rr := doJSON(r, "POST", "/api/about", gin.H{
		"title":      "Our mission",
		"paragraphs": []string{"data first"},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var created struct {
		About Entry `json:"about"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.About.ID)

	rr = doJSON(r, "PUT", "/api/about/"+created.About.ID, gin.H{"description": "since 2020"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(r, "GET", "/api/about", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var items []Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Our mission", items[0].Title)
	assert.Equal(t, "since 2020", items[0].Description)
	assert.Equal(t, []string{"data first"}, items[0].Paragraphs)
}

func TestAboutCreateRequiresTitle(t *testing.T) {
	r := newAboutRouter()

	rr := doJSON(r, "POST", "/api/about", gin.H{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "title")
}

func TestAboutUpdateInvalidID(t *testing.T) {
	r := newAboutRouter()

	rr := doJSON(r, "PUT", "/api/about/nope", gin.H{"title": "X"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(r, "PUT", "/api/about/"+uuid.NewString(), gin.H{"title": "X"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
