package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"status",
		"retry_count",
		"max_retries",
		"last_error",
		"dedupe_key",
		"available_at",
		"processed_at",
		"created_at",
	}
)

type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateChatEvent records a chat message event in the outbox.
func (op OutboxRepository) CreateChatEvent(ctx context.Context, event domain.ChatMessageEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}

	err = op.insertEvent(spanCtx, domain.OutboxEvent{
		ID:         uuid.New(),
		EntityType: domain.OutboxEntityType_ChatMessage,
		EntityID:   event.MessageID,
		Topic:      domain.OutboxTopic_ChatMessages,
		EventType:  event.Type,
		Payload:    payload,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// CreateSegmentEvent records an outbound messaging segment in the outbox.
func (op OutboxRepository) CreateSegmentEvent(ctx context.Context, event domain.SegmentEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal segment event: %w", err)
	}

	err = op.insertEvent(spanCtx, domain.OutboxEvent{
		ID:         uuid.New(),
		EntityType: domain.OutboxEntityType_Segment,
		EntityID:   event.ConversationID,
		Topic:      domain.OutboxTopic_OutboundSegments,
		EventType:  event.Type,
		Payload:    payload,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

func (op OutboxRepository) insertEvent(ctx context.Context, event domain.OutboxEvent) error {
	now := time.Now().UTC()
	_, err := op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			event.ID,
			event.EntityType,
			event.EntityID,
			event.Topic,
			event.EventType,
			event.Payload,
			domain.OutboxStatus_Pending,
			0,
			5,
			nil,
			nil,
			now,
			nil,
			now,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Pending}).
		Where(squirrel.LtOrEq{"available_at": time.Now().UTC()}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.DedupeKey,
			&oe.AvailableAt,
			&oe.ProcessedAt,
			&oe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", status).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}
