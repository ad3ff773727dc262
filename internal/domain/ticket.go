package domain

import (
	"context"

	"github.com/google/uuid"
)

// TicketCategory represents one price tier of an event.
type TicketCategory struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Name      string
	Price     float64
	Currency  string
	Available int
}

// Validate checks if the ticket category has valid data.
func (t TicketCategory) Validate() error {
	if t.Name == "" {
		return NewValidationErr("ticket category name cannot be empty")
	}
	if t.Price < 0 {
		return NewValidationErr("ticket category price cannot be negative")
	}
	if t.Available < 0 {
		return NewValidationErr("ticket category availability cannot be negative")
	}
	return nil
}

// TicketCategoryRepository defines the interface for managing ticket categories.
type TicketCategoryRepository interface {
	// CreateTicketCategory persists a new ticket category.
	CreateTicketCategory(ctx context.Context, category TicketCategory) error
	// GetTicketCategory returns the category with the given ID, a boolean indicating if it was found, and an error if any.
	GetTicketCategory(ctx context.Context, id uuid.UUID) (TicketCategory, bool, error)
	// FindByEventID returns all ticket categories of an event ordered by price ascending.
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]TicketCategory, error)
}
