package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
)

// ErrorCode classifies an API error for clients.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	UNAUTHORIZED  ErrorCode = "UNAUTHORIZED"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the error payload of an ErrorResp.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the envelope of every error response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// EventResp is the wire representation of an event.
type EventResp struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// EventListResp is a page of events.
type EventListResp struct {
	Items        []EventResp `json:"items"`
	Page         int         `json:"page"`
	NextPage     *int        `json:"next_page,omitempty"`
	PreviousPage *int        `json:"previous_page,omitempty"`
}

// TicketCategoryResp is the wire representation of a ticket category.
type TicketCategoryResp struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Available int       `json:"available"`
}

// EventDetailResp is an event with its ticket categories.
type EventDetailResp struct {
	Event            EventResp            `json:"event"`
	TicketCategories []TicketCategoryResp `json:"ticket_categories"`
}

// UserCreditsResp is the credit balance of a user.
type UserCreditsResp struct {
	UserID  uuid.UUID `json:"user_id"`
	Credits int       `json:"credits"`
}

// EventDigestResp is the latest generated event digest.
type EventDigestResp struct {
	Content     string    `json:"content"`
	Model       string    `json:"model"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatRequest is the body of a chat turn.
type ChatRequest struct {
	Message        string            `json:"message"`
	ConversationID *uuid.UUID        `json:"conversation_id,omitempty"`
	Channel        string            `json:"channel,omitempty"`
	UserContext    map[string]string `json:"user_context,omitempty"`
}

// ToolUsageResp records one tool invoked while answering.
type ToolUsageResp struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ChatResp is the outcome of a chat turn.
type ChatResp struct {
	ConversationID uuid.UUID            `json:"conversation_id"`
	Answer         string               `json:"answer"`
	ToolsUsed      []ToolUsageResp      `json:"tools_used"`
	Data           *domain.ResponseData `json:"data,omitempty"`
	Media          []domain.MediaItem   `json:"media,omitempty"`
}

// ToolDefinitionResp is the public shape of an agent tool. Routing details
// stay internal.
type ToolDefinitionResp struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	InputSchema domain.ToolSchema `json:"input_schema"`
}

// ToolListResp is the agent tool listing.
type ToolListResp struct {
	Tools []ToolDefinitionResp `json:"tools"`
}

// ExecuteToolRequest is the body of a direct tool execution.
type ExecuteToolRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ExecuteToolResp is the outcome of a direct tool execution.
type ExecuteToolResp struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode *int   `json:"status_code,omitempty"`
}

// ConversationResp is the wire representation of a conversation.
type ConversationResp struct {
	ID            uuid.UUID  `json:"id"`
	Channel       string     `json:"channel"`
	Title         string     `json:"title"`
	TitleSource   string     `json:"title_source"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ConversationListResp is a page of conversations.
type ConversationListResp struct {
	Conversations []ConversationResp `json:"conversations"`
	Page          int                `json:"page"`
	NextPage      *int               `json:"next_page,omitempty"`
	PreviousPage  *int               `json:"previous_page,omitempty"`
}

// UpdateConversationRequest is the body of a conversation update.
type UpdateConversationRequest struct {
	Title string `json:"title"`
}

// MessageResp is the wire representation of a chat message.
type MessageResp struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageListResp is a page of chat messages.
type MessageListResp struct {
	ConversationID uuid.UUID     `json:"conversation_id"`
	Messages       []MessageResp `json:"messages"`
	Page           int           `json:"page"`
	NextPage       *int          `json:"next_page,omitempty"`
	PreviousPage   *int          `json:"previous_page,omitempty"`
}
