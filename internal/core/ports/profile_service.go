package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// UpdateProfileInput is a partial profile update: nil fields are untouched.
// Role changes are admin-only.
type UpdateProfileInput struct {
	FullName *string
	Role     *string
}

// ProfileService defines use-case operations on the profile directory.
type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, caller Caller, id string, in UpdateProfileInput) (*domain.Profile, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

// AuthService implements registration and login.
type AuthService interface {
	// Register creates a profile. callerRole is the role of the authenticated
	// caller, empty for anonymous signup; only admins may create staff roles.
	Register(ctx context.Context, callerRole, email, password, fullName, role string) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
}
