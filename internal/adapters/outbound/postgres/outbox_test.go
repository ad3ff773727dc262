package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/festpass/festpass/internal/domain"
)

func TestOutboxRepository_CreateChatEvent(t *testing.T) {
	messageID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	conversationID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("INSERT INTO outbox_events (id,entity_type,entity_id,topic,event_type,payload,status,retry_count,max_retries,last_error,dedupe_key,available_at,processed_at,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)").
		WithArgs(
			sqlmock.AnyArg(),
			domain.OutboxEntityType_ChatMessage,
			messageID,
			domain.OutboxTopic_ChatMessages,
			domain.EventType_CHAT_MESSAGE_SENT,
			sqlmock.AnyArg(),
			domain.OutboxStatus_Pending,
			0,
			5,
			nil,
			nil,
			sqlmock.AnyArg(),
			nil,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	gotErr := repo.CreateChatEvent(context.Background(), domain.ChatMessageEvent{
		Type:           domain.EventType_CHAT_MESSAGE_SENT,
		ChatRole:       domain.ChatRole_User,
		MessageID:      messageID,
		ConversationID: conversationID,
	})

	assert.NoError(t, gotErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateSegmentEvent(t *testing.T) {
	conversationID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("INSERT INTO outbox_events (id,entity_type,entity_id,topic,event_type,payload,status,retry_count,max_retries,last_error,dedupe_key,available_at,processed_at,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)").
		WithArgs(
			sqlmock.AnyArg(),
			domain.OutboxEntityType_Segment,
			conversationID,
			domain.OutboxTopic_OutboundSegments,
			domain.EventType_SEGMENT_QUEUED,
			sqlmock.AnyArg(),
			domain.OutboxStatus_Pending,
			0,
			5,
			nil,
			nil,
			sqlmock.AnyArg(),
			nil,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	gotErr := repo.CreateSegmentEvent(context.Background(), domain.SegmentEvent{
		Type:           domain.EventType_SEGMENT_QUEUED,
		ConversationID: conversationID,
		Recipient:      "+351900000000",
		Text:           "Jazz Night this Friday.",
	})

	assert.NoError(t, gotErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_FetchPendingEvents(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	entityID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	rows := sqlmock.NewRows(outboxEventFields).
		AddRow(eventID, domain.OutboxEntityType_ChatMessage, entityID, domain.OutboxTopic_ChatMessages, domain.EventType_CHAT_MESSAGE_SENT, []byte(`{}`), domain.OutboxStatus_Pending, 0, 5, nil, nil, fixedTime, nil, fixedTime)
	mock.ExpectQuery("SELECT id, entity_type, entity_id, topic, event_type, payload, status, retry_count, max_retries, last_error, dedupe_key, available_at, processed_at, created_at FROM outbox_events WHERE status = $1 AND available_at <= $2 ORDER BY created_at ASC LIMIT 100 FOR UPDATE SKIP LOCKED").
		WithArgs(domain.OutboxStatus_Pending, sqlmock.AnyArg()).
		WillReturnRows(rows)

	repo := NewOutboxRepository(db)
	events, gotErr := repo.FetchPendingEvents(context.Background(), 100)

	assert.NoError(t, gotErr)
	assert.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	assert.Equal(t, domain.OutboxTopic_ChatMessages, events[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_UpdateEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3 WHERE id = $4").
		WithArgs(domain.OutboxStatus_Failed, 3, "publish error", eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	gotErr := repo.UpdateEvent(context.Background(), eventID, domain.OutboxStatus_Failed, 3, "publish error")

	assert.NoError(t, gotErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_DeleteEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	gotErr := repo.DeleteEvent(context.Background(), eventID)

	assert.NoError(t, gotErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_FetchPendingEvents_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectQuery("SELECT id, entity_type, entity_id, topic, event_type, payload, status, retry_count, max_retries, last_error, dedupe_key, available_at, processed_at, created_at FROM outbox_events WHERE status = $1 AND available_at <= $2 ORDER BY created_at ASC LIMIT 100 FOR UPDATE SKIP LOCKED").
		WillReturnError(errors.New("db error"))

	repo := NewOutboxRepository(db)
	_, gotErr := repo.FetchPendingEvents(context.Background(), 100)

	assert.Error(t, gotErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
