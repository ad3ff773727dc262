package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/festpass/festpass/internal/common"
	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

const (
	// MAX_CHAT_HISTORY_MESSAGES caps how many prior messages are replayed to
	// the model on each turn.
	MAX_CHAT_HISTORY_MESSAGES = 10
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// ChatWithAgentParams holds the optional parameters of a chat turn.
type ChatWithAgentParams struct {
	ConversationID *uuid.UUID
	UserContext    map[string]string
}

// ChatWithAgentOption defines a function type for specifying chat options.
type ChatWithAgentOption func(*ChatWithAgentParams)

// WithConversationID continues an existing conversation instead of starting a new one.
func WithConversationID(id uuid.UUID) ChatWithAgentOption {
	return func(params *ChatWithAgentParams) {
		params.ConversationID = &id
	}
}

// WithUserContext attaches caller context (user name, city, credits) to the system prompt.
func WithUserContext(userContext map[string]string) ChatWithAgentOption {
	return func(params *ChatWithAgentParams) {
		params.UserContext = userContext
	}
}

// ChatWithAgentResult is the outcome of one chat turn.
type ChatWithAgentResult struct {
	ConversationID    uuid.UUID
	Answer            string
	ToolsUsed         []domain.ToolUsage
	FormattedResponse domain.FormattedResponse
}

// ChatWithAgent defines the interface for the conversational agent use case.
type ChatWithAgent interface {
	Execute(ctx context.Context, query string, channel domain.ResponseChannel, opts ...ChatWithAgentOption) (ChatWithAgentResult, error)
}

// ChatWithAgentImpl is the implementation of the ChatWithAgent use case.
type ChatWithAgentImpl struct {
	orchestrator domain.AgentOrchestrator
	formatter    domain.ResponseFormatter
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	model        string
}

// NewChatWithAgentImpl creates a new instance of ChatWithAgentImpl.
func NewChatWithAgentImpl(
	orchestrator domain.AgentOrchestrator,
	formatter domain.ResponseFormatter,
	uow domain.UnitOfWork,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	model string,
) ChatWithAgentImpl {
	return ChatWithAgentImpl{
		orchestrator: orchestrator,
		formatter:    formatter,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		model:        model,
	}
}

// Execute answers one user message: it resolves the conversation, replays
// recent history through the orchestrator, formats the answer for the channel
// and persists the turn.
func (cwa ChatWithAgentImpl) Execute(ctx context.Context, query string, channel domain.ResponseChannel, opts ...ChatWithAgentOption) (ChatWithAgentResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(query) == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return ChatWithAgentResult{}, err
	}

	params := ChatWithAgentParams{}
	for _, opt := range opts {
		opt(&params)
	}

	conversation, err := cwa.resolveConversation(spanCtx, params, query, channel)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatWithAgentResult{}, err
	}

	history, err := cwa.buildHistory(spanCtx, conversation.ID, params.UserContext)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatWithAgentResult{}, err
	}

	agentResult, err := cwa.orchestrator.Run(spanCtx, query, history)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatWithAgentResult{}, err
	}

	formatted := cwa.formatter.Format(spanCtx, agentResult.Answer, agentResult.ToolsUsed, agentResult.RawData, channel)

	if err := cwa.persistTurn(spanCtx, conversation, query, agentResult, formatted, channel, params); err != nil {
		// The answer was produced; a persistence problem should not lose it.
		cwa.logger.Printf("persisting chat turn for conversation %s: %v", conversation.ID, err)
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return ChatWithAgentResult{
		ConversationID:    conversation.ID,
		Answer:            agentResult.Answer,
		ToolsUsed:         agentResult.ToolsUsed,
		FormattedResponse: formatted,
	}, nil
}

// resolveConversation loads the requested conversation or starts a new one
// titled after the first message.
func (cwa ChatWithAgentImpl) resolveConversation(ctx context.Context, params ChatWithAgentParams, query string, channel domain.ResponseChannel) (domain.Conversation, error) {
	if params.ConversationID != nil {
		conversation, found, err := cwa.uow.Conversation().GetConversation(ctx, *params.ConversationID)
		if err != nil {
			return domain.Conversation{}, err
		}
		if !found {
			return domain.Conversation{}, domain.NewNotFoundErr(fmt.Sprintf("conversation %s not found", *params.ConversationID))
		}
		return conversation, nil
	}
	return cwa.uow.Conversation().CreateConversation(ctx, domain.GenerateAutoConversationTitle(query), channel)
}

// buildHistory assembles the model history: the system prompt followed by the
// most recent user and assistant messages of the conversation.
func (cwa ChatWithAgentImpl) buildHistory(ctx context.Context, conversationID uuid.UUID, userContext map[string]string) ([]domain.AgentMessage, error) {
	systemMessages, err := cwa.buildSystemPrompt(userContext)
	if err != nil {
		return nil, err
	}

	recent, err := cwa.uow.Message().ListRecentMessages(ctx, conversationID, MAX_CHAT_HISTORY_MESSAGES)
	if err != nil {
		return nil, err
	}

	history := make([]domain.AgentMessage, 0, len(systemMessages)+len(recent))
	history = append(history, systemMessages...)
	for _, message := range recent {
		if message.Role != domain.ChatRole_User && message.Role != domain.ChatRole_Assistant {
			continue
		}
		history = append(history, domain.AgentMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}
	return history, nil
}

// buildSystemPrompt decodes the embedded prompt and injects the current time
// and the caller context.
func (cwa ChatWithAgentImpl) buildSystemPrompt(userContext map[string]string) ([]domain.AgentMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AgentMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat prompt: %w", err)
	}

	now := cwa.timeProvider.Now().Format("Monday, 02 Jan 2006 15:04 MST")
	for i, msg := range messages {
		msg.Content = fmt.Sprintf(msg.Content, now, renderUserContext(userContext))
		messages[i] = msg
	}
	return messages, nil
}

// renderUserContext flattens the caller context into stable key: value lines.
func renderUserContext(userContext map[string]string) string {
	if len(userContext) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(userContext))
	for key := range userContext {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", key, userContext[key]))
	}
	return strings.Join(lines, "\n")
}

// persistTurn stores the user message, the tool trace and the assistant answer
// in one transaction, together with the outbox events that fan the turn out.
func (cwa ChatWithAgentImpl) persistTurn(
	ctx context.Context,
	conversation domain.Conversation,
	query string,
	agentResult domain.AgentResult,
	formatted domain.FormattedResponse,
	channel domain.ResponseChannel,
	params ChatWithAgentParams,
) error {
	now := cwa.timeProvider.Now()

	return cwa.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		userMessage := domain.Message{
			ID:             uuid.New(),
			ConversationID: conversation.ID,
			Role:           domain.ChatRole_User,
			Content:        query,
			CreatedAt:      now,
		}
		if err := uow.Message().CreateMessage(ctx, userMessage); err != nil {
			return err
		}
		if err := uow.Outbox().CreateChatEvent(ctx, domain.ChatMessageEvent{
			Type:           domain.EventType_CHAT_MESSAGE_SENT,
			ChatRole:       domain.ChatRole_User,
			MessageID:      userMessage.ID,
			ConversationID: conversation.ID,
		}); err != nil {
			return err
		}

		for _, usage := range agentResult.ToolsUsed {
			trace := domain.Message{
				ID:             uuid.New(),
				ConversationID: conversation.ID,
				Role:           domain.ChatRole_Tool,
				Content:        renderToolTrace(usage),
				ToolName:       common.Ptr(usage.Name),
				CreatedAt:      now,
			}
			if err := uow.Message().CreateMessage(ctx, trace); err != nil {
				return err
			}
		}

		assistantMessage := domain.Message{
			ID:             uuid.New(),
			ConversationID: conversation.ID,
			Role:           domain.ChatRole_Assistant,
			Content:        agentResult.Answer,
			Model:          cwa.model,
			CreatedAt:      now,
		}
		if err := uow.Message().CreateMessage(ctx, assistantMessage); err != nil {
			return err
		}
		if err := uow.Outbox().CreateChatEvent(ctx, domain.ChatMessageEvent{
			Type:           domain.EventType_CHAT_MESSAGE_SENT,
			ChatRole:       domain.ChatRole_Assistant,
			MessageID:      assistantMessage.ID,
			ConversationID: conversation.ID,
		}); err != nil {
			return err
		}

		if channel == domain.ResponseChannel_Messaging {
			// Without a recipient the segment can never be delivered, so it
			// must not be enqueued in the first place.
			recipient := params.UserContext["phone"]
			if recipient == "" {
				cwa.logger.Printf("no recipient known for conversation %s, skipping outbound segment", conversation.ID)
			} else if err := uow.Outbox().CreateSegmentEvent(ctx, domain.SegmentEvent{
				Type:           domain.EventType_SEGMENT_QUEUED,
				ConversationID: conversation.ID,
				Recipient:      recipient,
				Text:           formatted.Answer,
				Media:          formatted.Media,
			}); err != nil {
				return err
			}
		}

		conversation.LastMessageAt = common.Ptr(now)
		conversation.UpdatedAt = now
		return uow.Conversation().UpdateConversation(ctx, conversation)
	})
}

// renderToolTrace serializes one tool usage for the conversation log.
func renderToolTrace(usage domain.ToolUsage) string {
	parts := make([]string, 0, len(usage.Arguments))
	keys := make([]string, 0, len(usage.Arguments))
	for key := range usage.Arguments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, usage.Arguments[key]))
	}
	return fmt.Sprintf("%s(%s)", usage.Name, strings.Join(parts, ", "))
}

// InitChatWithAgent initializes the ChatWithAgent use case and registers it in the dependency container.
type InitChatWithAgent struct {
	Orchestrator domain.AgentOrchestrator   `resolve:""`
	Formatter    domain.ResponseFormatter   `resolve:""`
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Model        string                     `config:"MODEL_NAME"`
}

// Initialize registers the ChatWithAgent implementation in the dependency container.
func (icwa InitChatWithAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ChatWithAgent](NewChatWithAgentImpl(
		icwa.Orchestrator, icwa.Formatter, icwa.Uow, icwa.TimeProvider, icwa.Logger, icwa.Model,
	))
	return ctx, nil
}
