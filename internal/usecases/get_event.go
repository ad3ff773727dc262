package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// GetEventResult bundles an event with its ticket categories.
type GetEventResult struct {
	Event            domain.Event
	TicketCategories []domain.TicketCategory
}

// GetEvent defines the interface for the GetEvent use case
type GetEvent interface {
	// Query returns one event with its ticket categories.
	Query(ctx context.Context, eventID uuid.UUID) (GetEventResult, error)
}

// GetEventImpl is the implementation of the GetEvent use case
type GetEventImpl struct {
	eventRepo  domain.EventRepository
	ticketRepo domain.TicketCategoryRepository
}

// NewGetEventImpl creates a new instance of GetEventImpl
func NewGetEventImpl(eventRepo domain.EventRepository, ticketRepo domain.TicketCategoryRepository) GetEventImpl {
	return GetEventImpl{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
	}
}

// Query returns one event with its ticket categories.
func (ge GetEventImpl) Query(ctx context.Context, eventID uuid.UUID) (GetEventResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	event, found, err := ge.eventRepo.GetEvent(spanCtx, eventID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return GetEventResult{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("event %s not found", eventID))
		telemetry.RecordErrorAndStatus(span, err)
		return GetEventResult{}, err
	}

	categories, err := ge.ticketRepo.FindByEventID(spanCtx, eventID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return GetEventResult{}, err
	}

	return GetEventResult{Event: event, TicketCategories: categories}, nil
}

// InitGetEvent initializes the GetEvent use case and registers it in the dependency container.
type InitGetEvent struct {
	EventRepo  domain.EventRepository          `resolve:""`
	TicketRepo domain.TicketCategoryRepository `resolve:""`
}

// Initialize registers the GetEvent use case in the dependency container
func (ige InitGetEvent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetEvent](NewGetEventImpl(ige.EventRepo, ige.TicketRepo))
	return ctx, nil
}
