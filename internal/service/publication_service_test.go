package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogpub/internal/models"
	"blogpub/internal/repository"
)

func TestPublicationService_FailsClosedWithoutSession(t *testing.T) {
	ctx := context.Background()
	pubRepo := new(MockPublicationRepository)
	svc := NewPublicationService(pubRepo)

	// No call may reach the repository when the session is missing.
	_, err := svc.Create(ctx, nil, "t", "c", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Feed(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Mine(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Get(ctx, nil, "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Search(ctx, nil, "cat")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Update(ctx, nil, "p1", "t", "c", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = svc.Delete(ctx, nil, "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	pubRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	pubRepo.AssertNotCalled(t, "GetAll", mock.Anything)
	pubRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	pubRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublicationService_Create(t *testing.T) {
	ctx := context.Background()
	sess := &models.SessionUser{UserID: "u1", Username: "alice"}

	t.Run("owner comes from the session", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		pubRepo.On("Create", mock.Anything, mock.MatchedBy(func(pub *models.Publication) bool {
			return pub.OwnerID == "u1" && pub.Title == "Hello" && pub.Content == "World"
		})).Return(nil)

		pub, err := svc.Create(ctx, sess, "Hello", "World", nil)

		require.NoError(t, err)
		assert.Equal(t, "u1", pub.OwnerID)
		pubRepo.AssertExpectations(t)
	})

	t.Run("image bytes are carried through", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		image := []byte{0xFF, 0xD8}
		pubRepo.On("Create", mock.Anything, mock.MatchedBy(func(pub *models.Publication) bool {
			return string(pub.Image) == string(image)
		})).Return(nil)

		_, err := svc.Create(ctx, sess, "t", "c", image)

		assert.NoError(t, err)
	})
}

func TestPublicationService_Update(t *testing.T) {
	ctx := context.Background()
	sess := &models.SessionUser{UserID: "u1", Username: "alice"}

	t.Run("nil image requests the preserve path", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		pubRepo.On("Update", mock.Anything, mock.MatchedBy(func(pub *models.Publication) bool {
			return pub.PublicationID == "p1" && pub.OwnerID == "u1"
		}), false).Return(nil)

		_, err := svc.Update(ctx, sess, "p1", "New", "Body", nil)

		assert.NoError(t, err)
		pubRepo.AssertExpectations(t)
	})

	t.Run("supplied image requests the replace path", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		pubRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Publication"), true).
			Return(nil)

		_, err := svc.Update(ctx, sess, "p1", "New", "Body", []byte{0x01})

		assert.NoError(t, err)
		pubRepo.AssertExpectations(t)
	})

	t.Run("someone else's publication is indistinguishable from a missing one", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		pubRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Publication"), false).
			Return(repository.ErrNotFoundOrForbidden)

		_, err := svc.Update(ctx, sess, "not-mine", "New", "Body", nil)

		assert.ErrorIs(t, err, repository.ErrNotFoundOrForbidden)
	})
}

func TestPublicationService_Delete(t *testing.T) {
	ctx := context.Background()
	sess := &models.SessionUser{UserID: "u1", Username: "alice"}

	pubRepo := new(MockPublicationRepository)
	svc := NewPublicationService(pubRepo)

	pubRepo.On("Delete", mock.Anything, "p1", "u1").Return(nil)

	err := svc.Delete(ctx, sess, "p1")

	assert.NoError(t, err)
	pubRepo.AssertExpectations(t)
}

func TestPublicationService_Reads(t *testing.T) {
	ctx := context.Background()
	sess := &models.SessionUser{UserID: "u1", Username: "alice"}

	t.Run("mine lists only the session owner's publications", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		pubRepo.On("GetByOwner", mock.Anything, "u1").
			Return([]models.Publication{{PublicationID: "p1", OwnerID: "u1"}}, nil)

		pubs, err := svc.Mine(ctx, sess)

		require.NoError(t, err)
		require.Len(t, pubs, 1)
		assert.Equal(t, "u1", pubs[0].OwnerID)
	})

	t.Run("search forwards the term", func(t *testing.T) {
		pubRepo := new(MockPublicationRepository)
		svc := NewPublicationService(pubRepo)

		pubRepo.On("SearchByTitle", mock.Anything, "cat").
			Return([]models.PublicationWithAuthor{}, nil)

		_, err := svc.Search(ctx, sess, "cat")

		assert.NoError(t, err)
		pubRepo.AssertExpectations(t)
	})
}
