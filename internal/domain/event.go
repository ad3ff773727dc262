package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the publication lifecycle status of an event.
type EventStatus string

const (
	EventStatus_Draft     EventStatus = "draft"
	EventStatus_Published EventStatus = "published"
	EventStatus_Cancelled EventStatus = "cancelled"
)

// Event represents an event in the catalog.
type Event struct {
	ID          uuid.UUID
	Name        string
	Description string
	StartsAt    time.Time
	Venue       string
	City        string
	ImageURL    string
	Status      EventStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks if the event has valid data.
func (e Event) Validate() error {
	if e.Name == "" {
		return NewValidationErr("event name cannot be empty")
	}
	if e.StartsAt.IsZero() {
		return NewValidationErr("event start time cannot be empty")
	}
	if e.Status != EventStatus_Draft && e.Status != EventStatus_Published && e.Status != EventStatus_Cancelled {
		return NewValidationErr("invalid event status: " + string(e.Status))
	}
	return nil
}

// EventRepository defines the interface for managing events.
type EventRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event Event) error
	// GetEvent returns the event with the given ID, a boolean indicating if it was found, and an error if any.
	GetEvent(ctx context.Context, id uuid.UUID) (Event, bool, error)
	// ListEvents returns published events with pagination support ordered by start time ascending.
	ListEvents(ctx context.Context, page int, pageSize int) ([]Event, bool, error)
	// ListUpcomingEvents returns up to limit published events starting at or after from.
	ListUpcomingEvents(ctx context.Context, from time.Time, limit int) ([]Event, error)
}
