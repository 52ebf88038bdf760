package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"blogpub/internal/config"
	"blogpub/internal/database"
	"blogpub/internal/service"
	"blogpub/internal/session"
)

type Handlers struct {
	AuthService        service.AuthService
	PublicationService service.PublicationService
	Sessions           session.Store
	DB                 *database.DB
	Redis              *redis.Client
	Cfg                *config.Config
	Validate           *validator.Validate
}

func NewHandlers(services *service.Service, sessions session.Store, db *database.DB, rdb *redis.Client, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:        services.Auth,
		PublicationService: services.Publication,
		Sessions:           sessions,
		DB:                 db,
		Redis:              rdb,
		Cfg:                cfg,
		Validate:           validator.New(),
	}
}
