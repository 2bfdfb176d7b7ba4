package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level attached to a user account. Every authenticated
// request carries exactly one role.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleDoctor   Role = "DOCTOR"
	RoleAttorney Role = "ATTORNEY"
)

// Roles lists every valid role value.
func Roles() []Role {
	return []Role{RoleAdmin, RoleStaff, RoleDoctor, RoleAttorney}
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin, RoleStaff, RoleDoctor, RoleAttorney:
		return Role(raw), true
	}
	return "", false
}

// User is a credential record. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
