package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

var eventFields = []string{
	"id",
	"name",
	"description",
	"starts_at",
	"venue",
	"city",
	"image_url",
	"status",
	"created_at",
	"updated_at",
}

// EventRepository is a PostgreSQL implementation of domain.EventRepository.
type EventRepository struct {
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(br squirrel.BaseRunner) EventRepository {
	return EventRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateEvent persists a new event.
func (r EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := event.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err := r.sb.
		Insert("events").
		Columns(eventFields...).
		Values(
			event.ID,
			event.Name,
			event.Description,
			event.StartsAt,
			event.Venue,
			event.City,
			event.ImageURL,
			event.Status,
			event.CreatedAt,
			event.UpdatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// GetEvent retrieves an event by ID.
func (r EventRepository) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var event domain.Event
	err := r.sb.
		Select(eventFields...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.StartsAt,
			&event.Venue,
			&event.City,
			&event.ImageURL,
			&event.Status,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Event{}, false, nil
		}
		return domain.Event{}, false, err
	}

	return event, true, nil
}

// ListEvents returns published events ordered by start time ascending.
func (r EventRepository) ListEvents(ctx context.Context, page int, pageSize int) ([]domain.Event, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer span.End()

	if page <= 0 {
		err := domain.NewValidationErr("page must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, false, err
	}
	if pageSize <= 0 {
		err := domain.NewValidationErr("page_size must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, false, err
	}

	rows, err := r.sb.
		Select(eventFields...).
		From("events").
		Where(squirrel.Eq{"status": domain.EventStatus_Published}).
		OrderBy("starts_at ASC").
		Limit(uint64(pageSize + 1)).
		Offset(uint64((page - 1) * pageSize)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	events := []domain.Event{}
	for rows.Next() {
		var event domain.Event
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.StartsAt,
			&event.Venue,
			&event.City,
			&event.ImageURL,
			&event.Status,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, false, err
		}

		events = append(events, event)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	hasMore := false
	if len(events) > pageSize {
		hasMore = true
		events = events[:pageSize]
	}

	return events, hasMore, nil
}

// ListUpcomingEvents returns up to limit published events starting at or after from.
func (r EventRepository) ListUpcomingEvents(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rows, err := r.sb.
		Select(eventFields...).
		From("events").
		Where(squirrel.Eq{"status": domain.EventStatus_Published}).
		Where(squirrel.GtOrEq{"starts_at": from}).
		OrderBy("starts_at ASC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	events := []domain.Event{}
	for rows.Next() {
		var event domain.Event
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.StartsAt,
			&event.Venue,
			&event.City,
			&event.ImageURL,
			&event.Status,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}

		events = append(events, event)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return events, nil
}

// InitEventRepository is a Symbiont initializer for EventRepository.
type InitEventRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the EventRepository in the dependency container.
func (i InitEventRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventRepository](NewEventRepository(i.DB))
	return ctx, nil
}
