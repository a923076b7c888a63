// Package session holds server-side session snapshots keyed by an opaque id.
package session

import (
	"context"
	"errors"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store persists sessions between requests.
type Store interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
