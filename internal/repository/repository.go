package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blogpub/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, userID, username, passwordHash string) error
}

type PublicationRepository interface {
	Create(ctx context.Context, pub *models.Publication) error
	GetByID(ctx context.Context, publicationID string) (*models.Publication, error)
	GetAll(ctx context.Context) ([]models.PublicationWithAuthor, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Publication, error)
	SearchByTitle(ctx context.Context, term string) ([]models.PublicationWithAuthor, error)
	Update(ctx context.Context, pub *models.Publication, replaceImage bool) error
	Delete(ctx context.Context, publicationID, ownerID string) error
}

type Repository struct {
	User        UserRepository
	Publication PublicationRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		Publication: NewPublicationRepository(db),
	}
}
