package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"blogpub/internal/config"
	"blogpub/internal/models"
	"blogpub/internal/repository"
)

// AuthService owns every password write in the system: registration,
// login verification and profile edits all go through the same bcrypt
// path, so a plaintext password never reaches the store.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, username, newPassword string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := s.validateCredentials(username, password); err != nil {
		return nil, err
	}

	// Early, non-authoritative duplicate check for a friendlier error.
	// The unique index on users.username is what actually guarantees
	// uniqueness under concurrent registration.
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, repository.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("checking username availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// bcrypt's comparison is constant-time; no short-circuit on a
	// matching prefix.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}

	return user, nil
}

// UpdateProfile changes the username and, when newPassword is non-empty,
// rehashes and replaces the stored password. An empty newPassword keeps
// the current hash.
func (s *authService) UpdateProfile(ctx context.Context, userID, username, newPassword string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash := user.PasswordHash
	if newPassword != "" {
		if utf8.RuneCountInString(newPassword) < s.cfg.MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, s.cfg.MinPasswordLength)
		}

		newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		hash = string(newHash)
	}

	if err := s.userRepo.Update(ctx, userID, username, hash); err != nil {
		return nil, err
	}

	user.Username = username
	user.PasswordHash = hash
	return user, nil
}

func (s *authService) validateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if utf8.RuneCountInString(password) < s.cfg.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, s.cfg.MinPasswordLength)
	}
	return nil
}
