package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents a registered attendee.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Credits   int
	CreatedAt time.Time
}

// UserRepository defines the interface for managing users.
type UserRepository interface {
	// GetUser returns the user with the given ID, a boolean indicating if it was found, and an error if any.
	GetUser(ctx context.Context, id uuid.UUID) (User, bool, error)
	// FindUserByPhone returns the user registered with the given phone number.
	FindUserByPhone(ctx context.Context, phone string) (User, bool, error)
}
