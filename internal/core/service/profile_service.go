package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

type profileService struct {
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

// NewProfileService returns a ProfileService implementation. No caching: every
// call round-trips to the backing store.
func NewProfileService(profiles ports.ProfileRepository, log zerolog.Logger) ports.ProfileService {
	return &profileService{profiles: profiles, log: log}
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.FindByID(ctx, id)
}

func (s *profileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

// Update applies a partial edit. A profile may be edited by its owner or by
// an admin; role changes are admin-only.
func (s *profileService) Update(ctx context.Context, caller ports.Caller, id string, in ports.UpdateProfileInput) (*domain.Profile, error) {
	if caller.UserID != id && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrAccessDenied
	}

	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Role != nil {
		if caller.Role != domain.RoleAdmin {
			return nil, domain.ErrAccessDenied
		}
		if !domain.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidCredentials
		}
		profile.Role = *in.Role
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, profile); err != nil {
		s.log.Error().Err(err).Str("profile_id", id).Msg("failed to update profile")
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if caller.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("profile_id", id).Str("deleted_by", caller.UserID).Msg("profile deleted")
	return nil
}
