package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// ProfileRepository defines persistence operations for identity records.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// FindByIDs returns the profiles matching ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error)
	FindByRole(ctx context.Context, role string) ([]*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	Delete(ctx context.Context, id string) error
}
