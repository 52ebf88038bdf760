package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogpub/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, userID, username, passwordHash string) error {
	args := m.Called(ctx, userID, username, passwordHash)
	return args.Error(0)
}

type MockPublicationRepository struct {
	mock.Mock
}

func (m *MockPublicationRepository) Create(ctx context.Context, pub *models.Publication) error {
	args := m.Called(ctx, pub)
	return args.Error(0)
}

func (m *MockPublicationRepository) GetByID(ctx context.Context, publicationID string) (*models.Publication, error) {
	args := m.Called(ctx, publicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publication), args.Error(1)
}

func (m *MockPublicationRepository) GetAll(ctx context.Context) ([]models.PublicationWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicationWithAuthor), args.Error(1)
}

func (m *MockPublicationRepository) GetByOwner(ctx context.Context, ownerID string) ([]models.Publication, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Publication), args.Error(1)
}

func (m *MockPublicationRepository) SearchByTitle(ctx context.Context, term string) ([]models.PublicationWithAuthor, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicationWithAuthor), args.Error(1)
}

func (m *MockPublicationRepository) Update(ctx context.Context, pub *models.Publication, replaceImage bool) error {
	args := m.Called(ctx, pub, replaceImage)
	return args.Error(0)
}

func (m *MockPublicationRepository) Delete(ctx context.Context, publicationID, ownerID string) error {
	args := m.Called(ctx, publicationID, ownerID)
	return args.Error(0)
}
