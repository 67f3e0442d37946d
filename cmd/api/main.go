package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/bokyaa/portfolio-backend/config"
	"github.com/bokyaa/portfolio-backend/internal/auth"
	"github.com/bokyaa/portfolio-backend/internal/backup"
	"github.com/bokyaa/portfolio-backend/internal/bootstrap"
	"github.com/bokyaa/portfolio-backend/internal/db"
	"github.com/bokyaa/portfolio-backend/internal/projects/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	backend, cleanup, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("store backend: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	if cfg.Store.BackupDir != "" {
		scheduler := backup.NewScheduler(store.New(backend), cfg.Store.BackupDir)
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Backend:     backend,
		Credentials: auth.NewStaticAuthenticator(cfg.Admin.Username, cfg.Admin.Password),
	})

	log.Printf("listening on :%s (store=%s)", cfg.Server.Port, cfg.Store.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func openBackend(ctx context.Context, cfg *config.Config) (store.Backend, func(), error) {
	switch cfg.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Store.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return store.NewRedisBackend(client, cfg.Store.Key), func() { client.Close() }, nil
	case "postgres":
		pg, err := db.Open(ctx)
		if err != nil {
			return nil, nil, err
		}
		backend, err := store.NewPostgresBackend(ctx, pg.Pool, cfg.Store.Key)
		if err != nil {
			pg.Close()
			return nil, nil, err
		}
		return backend, pg.Close, nil
	case "memory":
		return store.NewMemoryBackend(), nil, nil
	default:
		return store.NewFileBackend(cfg.Store.FilePath), nil, nil
	}
}
