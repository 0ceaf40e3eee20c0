package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

func TestProfileUpdate_OwnerEditsName(t *testing.T) {
	repo := newStubProfileRepo(&domain.Profile{ID: "client-1", Email: "c@example.com", Role: domain.RoleClient})
	svc := NewProfileService(repo, zerolog.Nop())

	name := "Cleo Client"
	updated, err := svc.Update(context.Background(), clientCaller, "client-1", ports.UpdateProfileInput{FullName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != name {
		t.Fatalf("full_name = %q, want %q", updated.FullName, name)
	}
}

func TestProfileUpdate_DeniedForOtherUsers(t *testing.T) {
	repo := newStubProfileRepo(&domain.Profile{ID: "client-2", Email: "o@example.com", Role: domain.RoleClient})
	svc := NewProfileService(repo, zerolog.Nop())

	name := "Impostor"
	_, err := svc.Update(context.Background(), clientCaller, "client-2", ports.UpdateProfileInput{FullName: &name})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("err = %v, want ErrAccessDenied", err)
	}

	// Technicians are staff but still may not edit someone else's profile.
	_, err = svc.Update(context.Background(), techCaller, "client-2", ports.UpdateProfileInput{FullName: &name})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("technician: err = %v, want ErrAccessDenied", err)
	}
}

func TestProfileUpdate_RoleChangeIsAdminOnly(t *testing.T) {
	repo := newStubProfileRepo(&domain.Profile{ID: "client-1", Email: "c@example.com", Role: domain.RoleClient})
	svc := NewProfileService(repo, zerolog.Nop())

	role := domain.RoleTechnician
	_, err := svc.Update(context.Background(), clientCaller, "client-1", ports.UpdateProfileInput{Role: &role})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("self promotion: err = %v, want ErrAccessDenied", err)
	}

	updated, err := svc.Update(context.Background(), adminCaller, "client-1", ports.UpdateProfileInput{Role: &role})
	if err != nil {
		t.Fatalf("admin role change: %v", err)
	}
	if updated.Role != domain.RoleTechnician {
		t.Fatalf("role = %s, want technician", updated.Role)
	}

	bogus := "root"
	if _, err := svc.Update(context.Background(), adminCaller, "client-1", ports.UpdateProfileInput{Role: &bogus}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("bogus role: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestProfileDelete_AdminOnly(t *testing.T) {
	repo := newStubProfileRepo(&domain.Profile{ID: "client-1", Email: "c@example.com", Role: domain.RoleClient})
	svc := NewProfileService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), techCaller, "client-1"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("technician delete: err = %v, want ErrAccessDenied", err)
	}
	if err := svc.Delete(context.Background(), adminCaller, "client-1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "client-1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("profile still resolvable after delete")
	}
}
