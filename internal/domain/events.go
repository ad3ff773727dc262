package domain

import (
	"context"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_CHAT_MESSAGE_SENT represents the event when a chat message is persisted.
	EventType_CHAT_MESSAGE_SENT EventType = "CHAT_MESSAGE.SENT"
	// EventType_SEGMENT_QUEUED represents the event when an outbound messaging segment is queued for delivery.
	EventType_SEGMENT_QUEUED EventType = "SEGMENT.QUEUED"
	// EventType_DIGEST_GENERATED represents the event when an event digest is generated.
	EventType_DIGEST_GENERATED EventType = "DIGEST.GENERATED"
)

// ChatMessageEvent represents a domain event for chat messages in the system.
type ChatMessageEvent struct {
	Type           EventType
	ChatRole       ChatRole
	MessageID      uuid.UUID
	ConversationID uuid.UUID
}

// SegmentEvent represents a domain event for an outbound messaging segment.
// It carries the rendered content so the relay can publish it without a
// second lookup.
type SegmentEvent struct {
	Type           EventType
	ConversationID uuid.UUID
	Recipient      string
	Text           string
	Media          []MediaItem
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}

// SegmentGateway defines the interface for delivering outbound messaging
// segments to the messaging provider.
type SegmentGateway interface {
	SendSegment(ctx context.Context, segment SegmentEvent) error
}
