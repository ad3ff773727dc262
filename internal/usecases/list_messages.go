package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// ListMessages defines the interface for the ListMessages use case
type ListMessages interface {
	Query(ctx context.Context, conversationID uuid.UUID, page int, pageSize int) ([]domain.Message, bool, error)
}

// ListMessagesImpl is the implementation of the ListMessages use case
type ListMessagesImpl struct {
	messageRepo domain.MessageRepository
}

// NewListMessagesImpl creates a new instance of ListMessagesImpl
func NewListMessagesImpl(messageRepo domain.MessageRepository) ListMessagesImpl {
	return ListMessagesImpl{
		messageRepo: messageRepo,
	}
}

// Query retrieves the messages of a conversation with pagination support
func (lm ListMessagesImpl) Query(ctx context.Context, conversationID uuid.UUID, page int, pageSize int) ([]domain.Message, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, hasMore, err := lm.messageRepo.ListMessages(spanCtx, conversationID, page, pageSize)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	// Tool traces stay internal to the conversation log
	visible := []domain.Message{}
	for _, msg := range messages {
		if msg.Role != domain.ChatRole_Tool && len(msg.Content) > 0 {
			visible = append(visible, msg)
		}
	}

	return visible, hasMore, nil
}

// InitListMessages is the initializer for the ListMessages use case
type InitListMessages struct {
	Repo domain.MessageRepository `resolve:""`
}

// Initialize registers the ListMessages use case in the dependency container
func (i InitListMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListMessages](NewListMessagesImpl(i.Repo))
	return ctx, nil
}
