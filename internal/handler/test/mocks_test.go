package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogpub/internal/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID, username, newPassword string) (*models.User, error) {
	args := m.Called(ctx, userID, username, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPublicationService struct {
	mock.Mock
}

func (m *MockPublicationService) Create(ctx context.Context, sess *models.SessionUser, title, content string, image []byte) (*models.Publication, error) {
	args := m.Called(ctx, sess, title, content, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publication), args.Error(1)
}

func (m *MockPublicationService) Feed(ctx context.Context, sess *models.SessionUser) ([]models.PublicationWithAuthor, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicationWithAuthor), args.Error(1)
}

func (m *MockPublicationService) Mine(ctx context.Context, sess *models.SessionUser) ([]models.Publication, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Publication), args.Error(1)
}

func (m *MockPublicationService) Get(ctx context.Context, sess *models.SessionUser, publicationID string) (*models.Publication, error) {
	args := m.Called(ctx, sess, publicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publication), args.Error(1)
}

func (m *MockPublicationService) Search(ctx context.Context, sess *models.SessionUser, term string) ([]models.PublicationWithAuthor, error) {
	args := m.Called(ctx, sess, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicationWithAuthor), args.Error(1)
}

func (m *MockPublicationService) Update(ctx context.Context, sess *models.SessionUser, publicationID, title, content string, image []byte) (*models.Publication, error) {
	args := m.Called(ctx, sess, publicationID, title, content, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publication), args.Error(1)
}

func (m *MockPublicationService) Delete(ctx context.Context, sess *models.SessionUser, publicationID string) error {
	args := m.Called(ctx, sess, publicationID)
	return args.Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Establish(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Current(ctx context.Context, token string) (*models.SessionUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionUser), args.Error(1)
}

func (m *MockSessionStore) Refresh(ctx context.Context, token string, user *models.User) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

func (m *MockSessionStore) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
