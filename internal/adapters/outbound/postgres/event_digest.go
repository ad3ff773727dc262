package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

var (
	eventDigestFields = []string{
		"id",
		"content",
		"model",
		"period_start",
		"period_end",
		"created_at",
	}
)

// EventDigestRepository is a PostgreSQL implementation of domain.EventDigestRepository.
type EventDigestRepository struct {
	sb squirrel.StatementBuilderType
}

// NewEventDigestRepository creates a new instance of EventDigestRepository.
func NewEventDigestRepository(br squirrel.BaseRunner) EventDigestRepository {
	return EventDigestRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SaveEventDigest stores an event digest, updating if it already exists.
func (r EventDigestRepository) SaveEventDigest(ctx context.Context, digest domain.EventDigest) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("digest_id", digest.ID.String()),
		attribute.String("model", digest.Model),
	))
	defer span.End()

	query := r.sb.
		Insert("event_digests").
		Columns(
			eventDigestFields...,
		).
		Values(
			digest.ID,
			digest.Content,
			digest.Model,
			digest.PeriodStart,
			digest.PeriodEnd,
			digest.CreatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
            content = EXCLUDED.content,
            model = EXCLUDED.model,
            period_start = EXCLUDED.period_start,
            period_end = EXCLUDED.period_end,
            created_at = EXCLUDED.created_at`)

	_, err := query.ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store digest: %w", err)
	}

	return nil
}

// GetLatestEventDigest retrieves the most recently generated digest.
func (r EventDigestRepository) GetLatestEventDigest(ctx context.Context) (domain.EventDigest, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var digest domain.EventDigest

	err := r.sb.
		Select(
			eventDigestFields...,
		).
		From("event_digests").
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&digest.ID,
			&digest.Content,
			&digest.Model,
			&digest.PeriodStart,
			&digest.PeriodEnd,
			&digest.CreatedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.EventDigest{}, false, nil
		}
		return domain.EventDigest{}, false, err
	}

	return digest, true, nil
}

// InitEventDigestRepository is a Symbiont initializer for EventDigestRepository.
type InitEventDigestRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the EventDigestRepository in the dependency container.
func (i InitEventDigestRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventDigestRepository](NewEventDigestRepository(i.DB))
	return ctx, nil
}
