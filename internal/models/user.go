package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a dashboard user's permission level.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleTreasurer Role = "Treasurer"
	RoleMember    Role = "Member"
)

// CanDecideLoans reports whether the role may approve, reject or settle loans.
func (r Role) CanDecideLoans() bool {
	return r == RoleAdmin || r == RoleTreasurer
}

// User represents a registered dashboard account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// DisplayName is the name shown in the dashboard header.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Role controls which mutations the user may perform.
	Role Role

	// AvatarSeed picks a deterministic avatar image for the user.
	AvatarSeed int

	CreatedAt int64
	UpdatedAt int64
}

// NewUser creates a user with a fresh ID and timestamps.
// New accounts get RoleMember unless a role is given.
func NewUser(email, displayName, passwordHash string, role Role) *User {
	if role == "" {
		role = RoleMember
	}
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
