package ports

import (
	"context"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

// AuthService implements login and user listing.
type AuthService interface {
	// Login verifies credentials and returns a signed session token plus the
	// user record. Unknown user and wrong password both yield
	// domain.ErrInvalidCredentials, indistinguishably.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// ListUsers returns active users, optionally filtered by access level.
	ListUsers(ctx context.Context, nivel string) ([]*domain.User, error)
}
