package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Publication struct {
	PublicationID string    `json:"publicationId" db:"publication_id"`
	OwnerID       string    `json:"ownerId" db:"owner_id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Image         []byte    `json:"-" db:"image"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicationWithAuthor is a Publication joined with the owner's username,
// used by the feed and search endpoints.
type PublicationWithAuthor struct {
	Publication
	AuthorUsername string `json:"authorUsername" db:"author_username"`
}

// SessionUser is the snapshot of an authenticated user bound to a session.
// It never carries the password hash.
type SessionUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// HasImage reports whether the publication carries an image payload.
func (p *Publication) HasImage() bool {
	return len(p.Image) > 0
}
