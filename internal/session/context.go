package session

import (
	"context"

	"blogpub/internal/models"
)

type ctxKey struct{}

// WithUser returns a context carrying the resolved session user.
func WithUser(ctx context.Context, user *models.SessionUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// FromContext returns the session user bound to the request, or nil when
// the request is anonymous.
func FromContext(ctx context.Context) *models.SessionUser {
	user, ok := ctx.Value(ctxKey{}).(*models.SessionUser)
	if !ok {
		return nil
	}
	return user
}
