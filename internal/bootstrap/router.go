package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	"github.com/Robertofsouzas/newsite/internal/about"
	httpapi "github.com/Robertofsouzas/newsite/internal/api/http"
	"github.com/Robertofsouzas/newsite/internal/api/http/middleware"
	"github.com/Robertofsouzas/newsite/internal/auth"
	cataloghttp "github.com/Robertofsouzas/newsite/internal/catalog/http"
	catalogservice "github.com/Robertofsouzas/newsite/internal/catalog/service"
	"github.com/Robertofsouzas/newsite/internal/contacts"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Auth        *auth.Service
	Catalog     *catalogservice.Service
	Contacts    contacts.Repository
	About       about.Repository
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())

	requireAuth := auth.RequireToken(dep.Auth)
	contactLimit := middleware.NewIPRateLimiter(rate.Limit(1), 5).Middleware()

	auth.Register(api, dep.Auth)
	cataloghttp.Register(api, dep.Catalog, requireAuth)
	contacts.Register(api, dep.Contacts, requireAuth, contactLimit)
	about.Register(api, dep.About, requireAuth)

	return r
}
