package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

func TestRegister_AnonymousGetsClientRole(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	profile, err := svc.Register(context.Background(), "", "new@example.com", "hunter22", "New User", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if profile.Role != domain.RoleClient {
		t.Fatalf("role = %s, want client", profile.Role)
	}
	if profile.PasswordHash == "hunter22" || profile.PasswordHash == "" {
		t.Fatalf("password stored unhashed")
	}
}

func TestRegister_StaffRolesRequireAdminCaller(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	for _, callerRole := range []string{"", domain.RoleClient, domain.RoleTechnician} {
		_, err := svc.Register(context.Background(), callerRole, "t@example.com", "pw123456", "T", domain.RoleTechnician)
		if !errors.Is(err, domain.ErrAccessDenied) {
			t.Fatalf("caller %q creating staff: err = %v, want ErrAccessDenied", callerRole, err)
		}
	}

	profile, err := svc.Register(context.Background(), domain.RoleAdmin, "t@example.com", "pw123456", "T", domain.RoleTechnician)
	if err != nil {
		t.Fatalf("admin creating technician: %v", err)
	}
	if profile.Role != domain.RoleTechnician {
		t.Fatalf("role = %s, want technician", profile.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubProfileRepo(&domain.Profile{ID: "p1", Email: "taken@example.com", Role: domain.RoleClient})
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), "", "taken@example.com", "pw123456", "X", "")
	if !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("err = %v, want ErrProfileExists", err)
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubProfileRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), domain.RoleAdmin, "x@example.com", "pw123456", "X", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_RoundTripAndClaims(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registered, err := svc.Register(context.Background(), "", "login@example.com", "pw123456", "Log In", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, profile, err := svc.Login(context.Background(), "login@example.com", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile.ID != registered.ID {
		t.Fatalf("profile id = %s, want %s", profile.ID, registered.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != registered.ID {
		t.Fatalf("user_id claim = %v", claims["user_id"])
	}
	if claims["role"] != domain.RoleClient {
		t.Fatalf("role claim = %v", claims["role"])
	}
	if claims["email"] != "login@example.com" {
		t.Fatalf("email claim = %v", claims["email"])
	}
}

func TestLogin_WrongPasswordAndUnknownEmail(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	if _, err := svc.Register(context.Background(), "", "u@example.com", "pw123456", "U", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "u@example.com", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	// Unknown email returns the same error so login probing cannot tell the two apart.
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "pw123456"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
