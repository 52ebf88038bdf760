package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blogpub/internal/models"
)

const (
	// keyPrefix namespaces session keys in Redis.
	keyPrefix = "session:"

	// tokenLength is the byte length of the random session token.
	tokenLength = 32
)

// ErrNoSession is returned when a token resolves to no stored session,
// either because it never existed or because Redis expired it.
var ErrNoSession = errors.New("session: no session for token")

// Store binds verified users to server-side sessions. The transport keeps
// only the opaque token; the user snapshot lives in Redis until Destroy
// or TTL expiry.
type Store interface {
	Establish(ctx context.Context, user *models.User) (string, error)
	Current(ctx context.Context, token string) (*models.SessionUser, error)
	Refresh(ctx context.Context, token string, user *models.User) error
	Destroy(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Establish(ctx context.Context, user *models.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	snapshot := models.SessionUser{
		UserID:   user.UserID,
		Username: user.Username,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encoding session snapshot: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	return token, nil
}

func (s *redisStore) Current(ctx context.Context, token string) (*models.SessionUser, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var snapshot models.SessionUser
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding session snapshot: %w", err)
	}

	return &snapshot, nil
}

// Refresh overwrites the snapshot stored under an existing token, keeping
// the token itself stable. Used after a profile edit so the session
// reflects the new username.
func (s *redisStore) Refresh(ctx context.Context, token string, user *models.User) error {
	snapshot := models.SessionUser{
		UserID:   user.UserID,
		Username: user.Username,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding session snapshot: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	return nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	// Destroy failures are surfaced, not swallowed: a session the caller
	// believes is gone must actually be gone.
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}

	return nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
