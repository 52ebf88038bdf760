package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"blogpub/internal/config"
	"blogpub/internal/database"
	"blogpub/internal/repository"
	"blogpub/internal/service"
	"blogpub/internal/session"
)

func App(cfg *config.Config) (*database.DB, *redis.Client, *service.Service, session.Store) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// connection Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg)
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	return db, rdb, services, sessions
}
