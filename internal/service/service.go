package service

import (
	"blogpub/internal/config"
	"blogpub/internal/repository"
)

type Service struct {
	Auth        AuthService
	Publication PublicationService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth:        NewAuthService(rep.User, cfg),
		Publication: NewPublicationService(rep.Publication),
	}
}
