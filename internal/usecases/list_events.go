package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// ListEvents defines the interface for the ListEvents use case
type ListEvents interface {
	// Query returns a paginated list of events ordered by start time ascending.
	Query(ctx context.Context, page int, pageSize int) ([]domain.Event, bool, error)
}

// ListEventsImpl is the implementation of the ListEvents use case
type ListEventsImpl struct {
	eventRepo domain.EventRepository
}

// NewListEventsImpl creates a new instance of ListEventsImpl
func NewListEventsImpl(eventRepo domain.EventRepository) ListEventsImpl {
	return ListEventsImpl{
		eventRepo: eventRepo,
	}
}

// Query returns a paginated list of events ordered by start time ascending.
func (le ListEventsImpl) Query(ctx context.Context, page int, pageSize int) ([]domain.Event, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	events, hasMore, err := le.eventRepo.ListEvents(spanCtx, page, pageSize)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	return events, hasMore, nil
}

// InitListEvents initializes the ListEvents use case and registers it in the dependency container.
type InitListEvents struct {
	EventRepo domain.EventRepository `resolve:""`
}

// Initialize registers the ListEvents use case in the dependency container
func (ile InitListEvents) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListEvents](NewListEventsImpl(ile.EventRepo))
	return ctx, nil
}
