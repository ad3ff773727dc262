package usecases

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/festpass/festpass/internal/domain"
)

type chatWithAgentMocks struct {
	orchestrator *domain.MockAgentOrchestrator
	formatter    *domain.MockResponseFormatter
	uow          *domain.MockUnitOfWork
	conversation *domain.MockConversationRepository
	message      *domain.MockMessageRepository
	outbox       *domain.MockOutboxRepository
	timeProvider *domain.MockCurrentTimeProvider
}

func newChatWithAgent(t *testing.T) (ChatWithAgentImpl, chatWithAgentMocks) {
	m := chatWithAgentMocks{
		orchestrator: domain.NewMockAgentOrchestrator(t),
		formatter:    domain.NewMockResponseFormatter(t),
		uow:          domain.NewMockUnitOfWork(t),
		conversation: domain.NewMockConversationRepository(t),
		message:      domain.NewMockMessageRepository(t),
		outbox:       domain.NewMockOutboxRepository(t),
		timeProvider: domain.NewMockCurrentTimeProvider(t),
	}
	impl := NewChatWithAgentImpl(
		m.orchestrator, m.formatter, m.uow, m.timeProvider,
		log.New(io.Discard, "", 0), "test-model",
	)
	return impl, m
}

func TestChatWithAgentImpl_Execute_EmptyQuery(t *testing.T) {
	impl, _ := newChatWithAgent(t)

	_, err := impl.Execute(context.Background(), "   ", domain.ResponseChannel_Web)

	require.Error(t, err)
	var validationErr *domain.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestChatWithAgentImpl_Execute_NewConversation(t *testing.T) {
	impl, m := newChatWithAgent(t)

	fixedTime := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	conversation := domain.Conversation{
		ID:          uuid.New(),
		Channel:     domain.ResponseChannel_Web,
		Title:       "What events are on this weekend?",
		TitleSource: domain.ConversationTitleSource_Auto,
	}
	agentResult := domain.AgentResult{
		Answer:    "Two events this weekend.",
		ToolsUsed: []domain.ToolUsage{{Name: "list_events", Arguments: map[string]any{"city": "Lisbon"}}},
		RawData:   []any{map[string]any{"id": "1"}},
	}
	formatted := domain.FormattedResponse{Answer: "Two events this weekend."}

	m.timeProvider.EXPECT().Now().Return(fixedTime)
	m.uow.EXPECT().Conversation().Return(m.conversation)
	m.uow.EXPECT().Message().Return(m.message)
	m.uow.EXPECT().Outbox().Return(m.outbox)
	m.uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(m.uow)
		})

	m.conversation.EXPECT().
		CreateConversation(mock.Anything, mock.Anything, domain.ResponseChannel_Web).
		Return(conversation, nil)
	m.message.EXPECT().
		ListRecentMessages(mock.Anything, conversation.ID, MAX_CHAT_HISTORY_MESSAGES).
		Return(nil, nil)

	m.orchestrator.EXPECT().
		Run(mock.Anything, "What events are on this weekend?", mock.MatchedBy(func(history []domain.AgentMessage) bool {
			// First entry is the system prompt with the current time injected
			return len(history) == 1 &&
				history[0].Role == domain.ChatRole_System &&
				len(history[0].Content) > 0
		})).
		Return(agentResult, nil)
	m.formatter.EXPECT().
		Format(mock.Anything, agentResult.Answer, agentResult.ToolsUsed, agentResult.RawData, domain.ResponseChannel_Web).
		Return(formatted)

	// One user message, one tool trace, one assistant message
	m.message.EXPECT().
		CreateMessage(mock.Anything, mock.MatchedBy(func(msg domain.Message) bool {
			return msg.Role == domain.ChatRole_User && msg.Content == "What events are on this weekend?"
		})).
		Return(nil).Once()
	m.message.EXPECT().
		CreateMessage(mock.Anything, mock.MatchedBy(func(msg domain.Message) bool {
			return msg.Role == domain.ChatRole_Tool && msg.Content == "list_events(city=Lisbon)"
		})).
		Return(nil).Once()
	m.message.EXPECT().
		CreateMessage(mock.Anything, mock.MatchedBy(func(msg domain.Message) bool {
			return msg.Role == domain.ChatRole_Assistant && msg.Model == "test-model"
		})).
		Return(nil).Once()
	m.outbox.EXPECT().
		CreateChatEvent(mock.Anything, mock.MatchedBy(func(event domain.ChatMessageEvent) bool {
			return event.Type == domain.EventType_CHAT_MESSAGE_SENT
		})).
		Return(nil).Times(2)
	m.conversation.EXPECT().
		UpdateConversation(mock.Anything, mock.MatchedBy(func(conv domain.Conversation) bool {
			return conv.LastMessageAt != nil && conv.LastMessageAt.Equal(fixedTime)
		})).
		Return(nil)

	result, err := impl.Execute(context.Background(), "What events are on this weekend?", domain.ResponseChannel_Web)

	require.NoError(t, err)
	assert.Equal(t, conversation.ID, result.ConversationID)
	assert.Equal(t, "Two events this weekend.", result.Answer)
	assert.Equal(t, agentResult.ToolsUsed, result.ToolsUsed)
	assert.Equal(t, formatted, result.FormattedResponse)
}

func TestChatWithAgentImpl_Execute_MessagingQueuesSegment(t *testing.T) {
	impl, m := newChatWithAgent(t)

	fixedTime := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	conversation := domain.Conversation{ID: uuid.New(), Channel: domain.ResponseChannel_Messaging}
	formatted := domain.FormattedResponse{
		Answer: "Jazz Night this Friday.",
		Media:  []domain.MediaItem{{Type: "image", URL: "https://cdn.local/jazz.jpg", Caption: "Jazz Night"}},
	}

	m.timeProvider.EXPECT().Now().Return(fixedTime)
	m.uow.EXPECT().Conversation().Return(m.conversation)
	m.uow.EXPECT().Message().Return(m.message)
	m.uow.EXPECT().Outbox().Return(m.outbox)
	m.uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(m.uow)
		})

	m.conversation.EXPECT().
		GetConversation(mock.Anything, conversation.ID).
		Return(conversation, true, nil)
	m.message.EXPECT().
		ListRecentMessages(mock.Anything, conversation.ID, MAX_CHAT_HISTORY_MESSAGES).
		Return(nil, nil)
	m.orchestrator.EXPECT().
		Run(mock.Anything, "any jazz?", mock.Anything).
		Return(domain.AgentResult{Answer: "Jazz Night this Friday."}, nil)
	m.formatter.EXPECT().
		Format(mock.Anything, mock.Anything, mock.Anything, mock.Anything, domain.ResponseChannel_Messaging).
		Return(formatted)

	m.message.EXPECT().CreateMessage(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.outbox.EXPECT().CreateChatEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.outbox.EXPECT().
		CreateSegmentEvent(mock.Anything, mock.MatchedBy(func(event domain.SegmentEvent) bool {
			return event.Type == domain.EventType_SEGMENT_QUEUED &&
				event.Recipient == "+351900000000" &&
				event.Text == "Jazz Night this Friday." &&
				len(event.Media) == 1
		})).
		Return(nil)
	m.conversation.EXPECT().UpdateConversation(mock.Anything, mock.Anything).Return(nil)

	_, err := impl.Execute(
		context.Background(), "any jazz?", domain.ResponseChannel_Messaging,
		WithConversationID(conversation.ID),
		WithUserContext(map[string]string{"phone": "+351900000000"}),
	)

	require.NoError(t, err)
}

func TestChatWithAgentImpl_Execute_MessagingWithoutRecipientSkipsSegment(t *testing.T) {
	impl, m := newChatWithAgent(t)

	fixedTime := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	conversation := domain.Conversation{ID: uuid.New(), Channel: domain.ResponseChannel_Messaging}

	m.timeProvider.EXPECT().Now().Return(fixedTime)
	m.uow.EXPECT().Conversation().Return(m.conversation)
	m.uow.EXPECT().Message().Return(m.message)
	m.uow.EXPECT().Outbox().Return(m.outbox)
	m.uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(m.uow)
		})

	m.conversation.EXPECT().
		GetConversation(mock.Anything, conversation.ID).
		Return(conversation, true, nil)
	m.message.EXPECT().
		ListRecentMessages(mock.Anything, conversation.ID, MAX_CHAT_HISTORY_MESSAGES).
		Return(nil, nil)
	m.orchestrator.EXPECT().
		Run(mock.Anything, "any jazz?", mock.Anything).
		Return(domain.AgentResult{Answer: "Jazz Night this Friday."}, nil)
	m.formatter.EXPECT().
		Format(mock.Anything, mock.Anything, mock.Anything, mock.Anything, domain.ResponseChannel_Messaging).
		Return(domain.FormattedResponse{Answer: "Jazz Night this Friday."})

	m.message.EXPECT().CreateMessage(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.outbox.EXPECT().CreateChatEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	// No CreateSegmentEvent expectation: the outbox must never receive a
	// segment event when the user context carries no phone number.
	m.conversation.EXPECT().UpdateConversation(mock.Anything, mock.Anything).Return(nil)

	result, err := impl.Execute(
		context.Background(), "any jazz?", domain.ResponseChannel_Messaging,
		WithConversationID(conversation.ID),
	)

	require.NoError(t, err)
	assert.Equal(t, "Jazz Night this Friday.", result.Answer)
}

func TestChatWithAgentImpl_Execute_ConversationNotFound(t *testing.T) {
	impl, m := newChatWithAgent(t)

	missingID := uuid.New()
	m.uow.EXPECT().Conversation().Return(m.conversation)
	m.conversation.EXPECT().
		GetConversation(mock.Anything, missingID).
		Return(domain.Conversation{}, false, nil)

	_, err := impl.Execute(
		context.Background(), "hello", domain.ResponseChannel_Web,
		WithConversationID(missingID),
	)

	require.Error(t, err)
	var notFoundErr *domain.NotFoundErr
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestChatWithAgentImpl_Execute_ToolTracesExcludedFromHistory(t *testing.T) {
	impl, m := newChatWithAgent(t)

	fixedTime := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	conversation := domain.Conversation{ID: uuid.New(), Channel: domain.ResponseChannel_Web}

	m.timeProvider.EXPECT().Now().Return(fixedTime)
	m.uow.EXPECT().Conversation().Return(m.conversation)
	m.uow.EXPECT().Message().Return(m.message)
	m.uow.EXPECT().Outbox().Return(m.outbox)
	m.uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(m.uow)
		})

	m.conversation.EXPECT().
		GetConversation(mock.Anything, conversation.ID).
		Return(conversation, true, nil)
	m.message.EXPECT().
		ListRecentMessages(mock.Anything, conversation.ID, MAX_CHAT_HISTORY_MESSAGES).
		Return([]domain.Message{
			{Role: domain.ChatRole_User, Content: "any jazz?"},
			{Role: domain.ChatRole_Tool, Content: "list_events()"},
			{Role: domain.ChatRole_Assistant, Content: "Jazz Night this Friday."},
		}, nil)

	m.orchestrator.EXPECT().
		Run(mock.Anything, "when does it start?", mock.MatchedBy(func(history []domain.AgentMessage) bool {
			for _, msg := range history {
				if msg.Role == domain.ChatRole_Tool {
					return false
				}
			}
			// System prompt plus the user and assistant turns
			return len(history) == 3
		})).
		Return(domain.AgentResult{Answer: "At 20:00."}, nil)
	m.formatter.EXPECT().
		Format(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.FormattedResponse{Answer: "At 20:00."})

	m.message.EXPECT().CreateMessage(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.outbox.EXPECT().CreateChatEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.conversation.EXPECT().UpdateConversation(mock.Anything, mock.Anything).Return(nil)

	_, err := impl.Execute(
		context.Background(), "when does it start?", domain.ResponseChannel_Web,
		WithConversationID(conversation.ID),
	)

	require.NoError(t, err)
}
