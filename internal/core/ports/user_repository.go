package ports

import (
	"context"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

// UserRepository defines read-only persistence operations for users.
// User rows are written out-of-band; the API never creates or deletes them.
type UserRepository interface {
	// FindActiveByUsername retrieves an active user by login handle.
	FindActiveByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListActive returns active users, optionally filtered by access level.
	ListActive(ctx context.Context, nivel string) ([]*domain.User, error)

	// FirstActiveByRole returns one active user holding the given access
	// level (first found), or domain.ErrUserNotFound when none exists.
	FirstActiveByRole(ctx context.Context, nivel string) (*domain.User, error)
}
