package contacts

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Robertofsouzas/newsite/internal/validation"
)

type Handler struct {
	repo Repository
}

// Register mounts the contact routes: public submission (rate limited)
// and the auth-gated admin listing.
func Register(api *gin.RouterGroup, repo Repository, requireAuth, rateLimit gin.HandlerFunc) {
	h := &Handler{repo: repo}

	api.POST("/contact", rateLimit, h.create)
	api.GET("/contacts", requireAuth, h.list)
}

func (h *Handler) create(c *gin.Context) {
	var req NewContact
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid contact data",
				"errors":  verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid contact data"})
		return
	}

	ct, err := h.repo.Create(c.Request.Context(), req, time.Now().UTC())
	if err != nil {
		log.Printf("[contacts] create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": ct})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("[contacts] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}
