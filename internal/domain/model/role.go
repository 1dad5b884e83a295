package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the marketplace side a user signed up for.
type Role uint8

const (
	RoleClient Role = iota + 1
	RoleFreelancer
)

// ParseRole converts the wire representation into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "client":
		return RoleClient, nil
	case "freelancer":
		return RoleFreelancer, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleFreelancer:
		return "freelancer"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
