package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogpub/internal/models"
)

func TestFromContext(t *testing.T) {
	t.Run("round-trips the session user", func(t *testing.T) {
		user := &models.SessionUser{UserID: "u1", Username: "alice"}
		ctx := WithUser(context.Background(), user)

		assert.Equal(t, user, FromContext(ctx))
	})

	t.Run("nil on an anonymous context", func(t *testing.T) {
		assert.Nil(t, FromContext(context.Background()))
	})
}
