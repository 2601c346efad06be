package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/Robertofsouzas/newsite/config"
	"github.com/Robertofsouzas/newsite/internal/about"
	"github.com/Robertofsouzas/newsite/internal/auth"
	"github.com/Robertofsouzas/newsite/internal/bootstrap"
	catalogrepo "github.com/Robertofsouzas/newsite/internal/catalog/repository"
	catalogservice "github.com/Robertofsouzas/newsite/internal/catalog/service"
	"github.com/Robertofsouzas/newsite/internal/contacts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	deps := bootstrap.RouterDeps{
		ServiceName: "newsite-api",
		Version:     cfg.App.Version,
	}

	if cfg.Database.URL != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.URL})
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		projects := catalogrepo.NewPostgres(pool)
		contactRepo := contacts.NewPostgresRepo(pool)
		aboutRepo := about.NewPostgresRepo(pool)
		for _, ensure := range []func(context.Context) error{
			projects.EnsureSchema, contactRepo.EnsureSchema, aboutRepo.EnsureSchema,
		} {
			if err := ensure(ctx); err != nil {
				log.Fatalf("schema: %v", err)
			}
		}

		deps.DB = pool
		deps.Catalog = catalogservice.New(projects)
		deps.Contacts = contactRepo
		deps.About = aboutRepo
	} else {
		log.Println("DATABASE_URL not set, using in-memory store with sample data")
		deps.Catalog = catalogservice.New(catalogrepo.NewMemory(catalogrepo.SampleProjects()...))
		deps.Contacts = contacts.NewMemoryRepo()
		deps.About = about.NewMemoryRepo()
	}

	var tokens auth.TokenStore = auth.NewMemoryTokenStore()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		tokens = auth.NewRedisTokenStore(client)
	}
	deps.Auth = auth.NewService(tokens, auth.Credentials{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	})

	r := bootstrap.BuildRouter(deps)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
