package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Robertofsouzas/newsite/internal/catalog/service"
)

// Register mounts the project routes. Public feeds stay open; listing
// everything and every mutation sit behind the auth gate.
func Register(api *gin.RouterGroup, svc *service.Service, requireAuth gin.HandlerFunc) {
	h := &Handler{svc: svc}

	projects := api.Group("/projects")

	projects.GET("/active", h.listActive)
	projects.GET("/featured", h.listFeatured)
	projects.GET("/type/:type", h.listByType)
	projects.GET("/slug/:slug", h.getBySlug)
	projects.GET("/:id", h.getByID)

	projects.GET("", requireAuth, h.list)
	projects.POST("", requireAuth, h.create)
	projects.PUT("/:id", requireAuth, h.update)
	projects.DELETE("/:id", requireAuth, h.delete)
}
