package service

import (
	"context"

	"blogpub/internal/models"
	"blogpub/internal/repository"
)

// PublicationService is the authorization gate in front of the publication
// repository. Every method takes the acting session user explicitly; a nil
// session is rejected before any repository call. Owner ids always come
// from the session, never from the client.
type PublicationService interface {
	Create(ctx context.Context, sess *models.SessionUser, title, content string, image []byte) (*models.Publication, error)
	Feed(ctx context.Context, sess *models.SessionUser) ([]models.PublicationWithAuthor, error)
	Mine(ctx context.Context, sess *models.SessionUser) ([]models.Publication, error)
	Get(ctx context.Context, sess *models.SessionUser, publicationID string) (*models.Publication, error)
	Search(ctx context.Context, sess *models.SessionUser, term string) ([]models.PublicationWithAuthor, error)
	Update(ctx context.Context, sess *models.SessionUser, publicationID, title, content string, image []byte) (*models.Publication, error)
	Delete(ctx context.Context, sess *models.SessionUser, publicationID string) error
}

type publicationService struct {
	pubRepo repository.PublicationRepository
}

func NewPublicationService(pubRepo repository.PublicationRepository) PublicationService {
	return &publicationService{pubRepo: pubRepo}
}

func (p *publicationService) Create(ctx context.Context, sess *models.SessionUser, title, content string, image []byte) (*models.Publication, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	// Empty title/content are accepted, matching the reference behavior.
	pub := &models.Publication{
		OwnerID: sess.UserID,
		Title:   title,
		Content: content,
		Image:   image,
	}

	if err := p.pubRepo.Create(ctx, pub); err != nil {
		return nil, err
	}

	return pub, nil
}

func (p *publicationService) Feed(ctx context.Context, sess *models.SessionUser) ([]models.PublicationWithAuthor, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	return p.pubRepo.GetAll(ctx)
}

func (p *publicationService) Mine(ctx context.Context, sess *models.SessionUser) ([]models.Publication, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	return p.pubRepo.GetByOwner(ctx, sess.UserID)
}

func (p *publicationService) Get(ctx context.Context, sess *models.SessionUser, publicationID string) (*models.Publication, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	return p.pubRepo.GetByID(ctx, publicationID)
}

func (p *publicationService) Search(ctx context.Context, sess *models.SessionUser, term string) ([]models.PublicationWithAuthor, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	return p.pubRepo.SearchByTitle(ctx, term)
}

// Update replaces the image only when one was uploaded; a nil image leaves
// the stored bytes untouched.
func (p *publicationService) Update(ctx context.Context, sess *models.SessionUser, publicationID, title, content string, image []byte) (*models.Publication, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	pub := &models.Publication{
		PublicationID: publicationID,
		OwnerID:       sess.UserID,
		Title:         title,
		Content:       content,
		Image:         image,
	}

	if err := p.pubRepo.Update(ctx, pub, image != nil); err != nil {
		return nil, err
	}

	return pub, nil
}

func (p *publicationService) Delete(ctx context.Context, sess *models.SessionUser, publicationID string) error {
	if sess == nil {
		return ErrUnauthenticated
	}

	return p.pubRepo.Delete(ctx, publicationID, sess.UserID)
}
