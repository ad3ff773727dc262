package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// Message represents one chat message in a conversation. Tool-trace messages
// carry the name of the tool that produced them in ToolName.
type Message struct {
	ID               uuid.UUID
	ConversationID   uuid.UUID
	Role             ChatRole
	Content          string
	ToolName         *string
	Model            string
	PromptTokens     int
	CompletionTokens int
	CreatedAt        time.Time
}

// MessageRepository defines the interface for chat message persistence
type MessageRepository interface {
	// CreateMessage persists a chat message in its conversation.
	CreateMessage(ctx context.Context, message Message) error

	// ListMessages retrieves messages of a conversation ordered by creation time
	// ascending, with pagination support.
	ListMessages(ctx context.Context, conversationID uuid.UUID, page int, pageSize int) ([]Message, bool, error)

	// ListRecentMessages retrieves the last N user and assistant messages of a
	// conversation ordered by creation time ascending.
	ListRecentMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]Message, error)
}
