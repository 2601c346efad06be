package about

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Robertofsouzas/newsite/internal/validation"
)

type Handler struct {
	repo Repository
}

// Register mounts the about-section routes; reads are public, writes
// sit behind the auth gate.
func Register(api *gin.RouterGroup, repo Repository, requireAuth gin.HandlerFunc) {
	h := &Handler{repo: repo}

	api.GET("/about", h.list)
	api.POST("/about", requireAuth, h.create)
	api.PUT("/about/:id", requireAuth, h.update)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("[about] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req NewEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	now := time.Now().UTC()
	e, err := h.repo.Create(c.Request.Context(), Entry{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Paragraphs:  req.Paragraphs,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Printf("[about] create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about": e})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid about ID"})
		return
	}

	var req Patch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	e, err := h.repo.Update(c.Request.Context(), id, req, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "About entry not found"})
			return
		}
		log.Printf("[about] update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about": e})
}

func respondValidation(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid about data",
			"errors":  verr.Fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid about data"})
}
