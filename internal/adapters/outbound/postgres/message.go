package postgres

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

var messageFields = []string{
	"id",
	"conversation_id",
	"chat_role",
	"content",
	"tool_name",
	"model",
	"prompt_tokens",
	"completion_tokens",
	"created_at",
}

// MessageRepository persists chat messages in Postgres.
type MessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(br squirrel.BaseRunner) MessageRepository {
	return MessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateMessage persists one chat message in its conversation.
func (r MessageRepository) CreateMessage(ctx context.Context, message domain.Message) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Insert("messages").
		Columns(messageFields...).
		Values(
			message.ID,
			message.ConversationID,
			message.Role,
			message.Content,
			message.ToolName,
			message.Model,
			message.PromptTokens,
			message.CompletionTokens,
			message.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListMessages retrieves messages of a conversation ordered by creation time ascending.
func (r MessageRepository) ListMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	page int,
	pageSize int,
) ([]domain.Message, bool, error) {
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
		Select(messageFields...).
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC").
		Limit(uint64(pageSize + 1)).
		Offset(uint64((page - 1) * pageSize)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	messages, err := scanMessages(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	hasMore := false
	if len(messages) > pageSize {
		hasMore = true
		messages = messages[:pageSize]
	}

	return messages, hasMore, nil
}

// ListRecentMessages retrieves the last N user and assistant messages of a
// conversation in chronological order.
func (r MessageRepository) ListRecentMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	limit int,
) ([]domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rows, err := r.sb.
		Select(messageFields...).
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		Where(squirrel.Eq{"chat_role": []domain.ChatRole{domain.ChatRole_User, domain.ChatRole_Assistant}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	messages, err := scanMessages(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// Fetched newest first; reverse to chronological order
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.Role,
			&m.Content,
			&m.ToolName,
			&m.Model,
			&m.PromptTokens,
			&m.CompletionTokens,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// InitMessageRepository is a Symbiont initializer for MessageRepository.
type InitMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the MessageRepository in the dependency container.
func (i InitMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.MessageRepository](NewMessageRepository(i.DB))
	return ctx, nil
}
