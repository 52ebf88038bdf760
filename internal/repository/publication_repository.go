package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogpub/internal/models"
)

type publicationRepository struct {
	db *sqlx.DB
}

func NewPublicationRepository(db *sqlx.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, pub *models.Publication) error {
	if pub.PublicationID == "" {
		pub.PublicationID = uuid.New().String()
	}

	now := time.Now()
	pub.CreatedAt = now
	pub.UpdatedAt = now

	query := `
		INSERT INTO publications (publication_id, owner_id, title, content, image, created_at, updated_at)
		VALUES (:publication_id, :owner_id, :title, :content, :image, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, pub)
	if err != nil {
		return fmt.Errorf("creating publication: %w", err)
	}

	return nil
}

func (r *publicationRepository) GetByID(ctx context.Context, publicationID string) (*models.Publication, error) {
	var pub models.Publication

	query := `SELECT * FROM publications WHERE publication_id = $1`

	err := r.db.GetContext(ctx, &pub, query, publicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("getting publication: %w", err)
	}

	return &pub, nil
}

func (r *publicationRepository) GetAll(ctx context.Context) ([]models.PublicationWithAuthor, error) {
	query := `
		SELECT publications.*, users.username AS author_username
		FROM publications
		JOIN users ON publications.owner_id = users.user_id
		ORDER BY publications.created_at
	`

	pubs := []models.PublicationWithAuthor{}
	err := r.db.SelectContext(ctx, &pubs, query)
	if err != nil {
		return nil, fmt.Errorf("listing publications: %w", err)
	}

	return pubs, nil
}

func (r *publicationRepository) GetByOwner(ctx context.Context, ownerID string) ([]models.Publication, error) {
	query := `
		SELECT * FROM publications
		WHERE owner_id = $1
		ORDER BY created_at
	`

	pubs := []models.Publication{}
	err := r.db.SelectContext(ctx, &pubs, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing publications by owner: %w", err)
	}

	return pubs, nil
}

// SearchByTitle matches titles containing term as a substring. ILIKE makes
// the match case-insensitive; the reference inherited whatever collation
// the store used, so the behavior is pinned down here instead.
func (r *publicationRepository) SearchByTitle(ctx context.Context, term string) ([]models.PublicationWithAuthor, error) {
	query := `
		SELECT publications.*, users.username AS author_username
		FROM publications
		JOIN users ON publications.owner_id = users.user_id
		WHERE publications.title ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY publications.created_at
	`

	pubs := []models.PublicationWithAuthor{}
	err := r.db.SelectContext(ctx, &pubs, query, escapeLikeTerm(term))
	if err != nil {
		return nil, fmt.Errorf("searching publications: %w", err)
	}

	return pubs, nil
}

// Update writes title and content, and the image only when replaceImage is
// set. Two separate statements so an update without an upload can never
// null out a stored image. The owner predicate is part of the statement:
// zero affected rows means the record is missing or owned by someone else,
// and the caller cannot tell which.
func (r *publicationRepository) Update(ctx context.Context, pub *models.Publication, replaceImage bool) error {
	pub.UpdatedAt = time.Now()

	var (
		result sql.Result
		err    error
	)

	if replaceImage {
		query := `
			UPDATE publications
			SET title = $1, content = $2, image = $3, updated_at = $4
			WHERE publication_id = $5 AND owner_id = $6
		`
		result, err = r.db.ExecContext(ctx, query,
			pub.Title, pub.Content, pub.Image, pub.UpdatedAt, pub.PublicationID, pub.OwnerID)
	} else {
		query := `
			UPDATE publications
			SET title = $1, content = $2, updated_at = $3
			WHERE publication_id = $4 AND owner_id = $5
		`
		result, err = r.db.ExecContext(ctx, query,
			pub.Title, pub.Content, pub.UpdatedAt, pub.PublicationID, pub.OwnerID)
	}

	if err != nil {
		return fmt.Errorf("updating publication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFoundOrForbidden
	}

	return nil
}

func (r *publicationRepository) Delete(ctx context.Context, publicationID, ownerID string) error {
	query := `DELETE FROM publications WHERE publication_id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, publicationID, ownerID)
	if err != nil {
		return fmt.Errorf("deleting publication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFoundOrForbidden
	}

	return nil
}

// escapeLikeTerm makes LIKE metacharacters in a user-supplied search term
// match literally.
func escapeLikeTerm(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
