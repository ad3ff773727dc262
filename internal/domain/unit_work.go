package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and transactions.
type UnitOfWork interface {
	// Event returns the repository for managing events.
	Event() EventRepository
	// TicketCategory returns the repository for managing ticket categories.
	TicketCategory() TicketCategoryRepository
	// User returns the repository for managing users.
	User() UserRepository
	// Conversation returns the repository for managing conversations.
	Conversation() ConversationRepository
	// Message returns the repository for managing chat messages.
	Message() MessageRepository
	// EventDigest returns the repository for managing event digests.
	EventDigest() EventDigestRepository
	// Outbox returns the repository for managing outbox events.
	Outbox() OutboxRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
