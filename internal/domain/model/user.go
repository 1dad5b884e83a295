package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered client or freelancer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor returns the identity the user acts under.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
