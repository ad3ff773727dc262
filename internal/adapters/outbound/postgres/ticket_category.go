package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

var ticketCategoryFields = []string{
	"id",
	"event_id",
	"name",
	"price",
	"currency",
	"available",
}

// TicketCategoryRepository is a PostgreSQL implementation of domain.TicketCategoryRepository.
type TicketCategoryRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTicketCategoryRepository creates a new instance of TicketCategoryRepository.
func NewTicketCategoryRepository(br squirrel.BaseRunner) TicketCategoryRepository {
	return TicketCategoryRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateTicketCategory persists a new ticket category.
func (r TicketCategoryRepository) CreateTicketCategory(ctx context.Context, category domain.TicketCategory) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := category.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err := r.sb.
		Insert("ticket_categories").
		Columns(ticketCategoryFields...).
		Values(
			category.ID,
			category.EventID,
			category.Name,
			category.Price,
			category.Currency,
			category.Available,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// GetTicketCategory retrieves a ticket category by ID.
func (r TicketCategoryRepository) GetTicketCategory(ctx context.Context, id uuid.UUID) (domain.TicketCategory, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var category domain.TicketCategory
	err := r.sb.
		Select(ticketCategoryFields...).
		From("ticket_categories").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&category.ID,
			&category.EventID,
			&category.Name,
			&category.Price,
			&category.Currency,
			&category.Available,
		)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.TicketCategory{}, false, nil
		}
		return domain.TicketCategory{}, false, err
	}

	return category, true, nil
}

// FindByEventID returns all ticket categories of an event ordered by price ascending.
func (r TicketCategoryRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]domain.TicketCategory, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(ticketCategoryFields...).
		From("ticket_categories").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("price ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	categories := []domain.TicketCategory{}
	for rows.Next() {
		var category domain.TicketCategory
		err := rows.Scan(
			&category.ID,
			&category.EventID,
			&category.Name,
			&category.Price,
			&category.Currency,
			&category.Available,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}

		categories = append(categories, category)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return categories, nil
}

// InitTicketCategoryRepository is a Symbiont initializer for TicketCategoryRepository.
type InitTicketCategoryRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TicketCategoryRepository in the dependency container.
func (i InitTicketCategoryRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TicketCategoryRepository](NewTicketCategoryRepository(i.DB))
	return ctx, nil
}
