package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the coarse role of a user
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleTechnician    Role = "technician"
	RoleFrontDesk     Role = "front_desk"
)

// DefaultRole is the role assumed when no role row exists for a user.
// Absence of a role is not a fault; it means least-privileged.
const DefaultRole = RoleTechnician

// RoleAssignment maps a user identity to a role
type RoleAssignment struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdministrator reports whether the role carries owner privileges
func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

// Valid reports whether the role belongs to the closed role set
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleTechnician, RoleFrontDesk:
		return true
	}
	return false
}
