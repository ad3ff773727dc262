package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// ListTicketCategories defines the interface for the ListTicketCategories use case
type ListTicketCategories interface {
	// Query returns the ticket categories of an event ordered by price ascending.
	Query(ctx context.Context, eventID uuid.UUID) ([]domain.TicketCategory, error)
}

// ListTicketCategoriesImpl is the implementation of the ListTicketCategories use case
type ListTicketCategoriesImpl struct {
	eventRepo  domain.EventRepository
	ticketRepo domain.TicketCategoryRepository
}

// NewListTicketCategoriesImpl creates a new instance of ListTicketCategoriesImpl
func NewListTicketCategoriesImpl(eventRepo domain.EventRepository, ticketRepo domain.TicketCategoryRepository) ListTicketCategoriesImpl {
	return ListTicketCategoriesImpl{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
	}
}

// Query returns the ticket categories of an event ordered by price ascending.
func (ltc ListTicketCategoriesImpl) Query(ctx context.Context, eventID uuid.UUID) ([]domain.TicketCategory, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, found, err := ltc.eventRepo.GetEvent(spanCtx, eventID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("event %s not found", eventID))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	categories, err := ltc.ticketRepo.FindByEventID(spanCtx, eventID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return categories, nil
}

// InitListTicketCategories initializes the ListTicketCategories use case and registers it in the dependency container.
type InitListTicketCategories struct {
	EventRepo  domain.EventRepository          `resolve:""`
	TicketRepo domain.TicketCategoryRepository `resolve:""`
}

// Initialize registers the ListTicketCategories use case in the dependency container
func (iltc InitListTicketCategories) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTicketCategories](NewListTicketCategoriesImpl(iltc.EventRepo, iltc.TicketRepo))
	return ctx, nil
}
