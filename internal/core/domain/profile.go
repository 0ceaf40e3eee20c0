package domain

import "time"

const (
	RoleClient     = "client"
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
)

// Profile models an identity record: one per authenticated user.
type Profile struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// IsStaff reports whether the profile has elevated ticket visibility.
func (p *Profile) IsStaff() bool {
	return IsStaffRole(p.Role)
}

// IsStaffRole is the single capability-resolution point for role checks.
// Technicians and admins are staff; everything else is not.
func IsStaffRole(role string) bool {
	return role == RoleTechnician || role == RoleAdmin
}

// ValidRole reports whether role is one of the three enumerated values.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleTechnician || role == RoleAdmin
}

// DisplayName returns the name to show for the profile, falling back to the
// email address when no full name is set.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
