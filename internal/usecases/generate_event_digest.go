package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

const (
	// DIGEST_PERIOD_DAYS is the window of upcoming events covered by one digest.
	DIGEST_PERIOD_DAYS = 14
	// DIGEST_MAX_EVENTS caps how many events are fed to the model.
	DIGEST_MAX_EVENTS = 50
)

//go:embed prompts/event_digest.yml
var digestPrompt embed.FS

var codeFenceRe = regexp.MustCompile("(?s)^```[a-z]*\n(.*)\n```$")

// CompletedDigestChannel receives digests after they are stored. Used by tests
// and by the workers host to observe completion.
type CompletedDigestChannel chan domain.EventDigest

// GenerateEventDigest defines the interface for the GenerateEventDigest use case
type GenerateEventDigest interface {
	// Execute summarizes the upcoming events into a stored digest.
	Execute(ctx context.Context) error
}

// GenerateEventDigestImpl is the implementation of the GenerateEventDigest use case
type GenerateEventDigestImpl struct {
	uow          domain.UnitOfWork
	model        domain.ModelClient
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	modelName    string
	completedCh  CompletedDigestChannel
}

// NewGenerateEventDigestImpl creates a new instance of GenerateEventDigestImpl
func NewGenerateEventDigestImpl(
	uow domain.UnitOfWork,
	model domain.ModelClient,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	modelName string,
	completedCh CompletedDigestChannel,
) GenerateEventDigestImpl {
	return GenerateEventDigestImpl{
		uow:          uow,
		model:        model,
		timeProvider: timeProvider,
		logger:       logger,
		modelName:    modelName,
		completedCh:  completedCh,
	}
}

// digestEventRow is the compact event shape handed to the model.
type digestEventRow struct {
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
	Venue    string `json:"venue"`
	City     string `json:"city"`
}

// Execute summarizes the upcoming events into a stored digest.
func (ged GenerateEventDigestImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := ged.timeProvider.Now().UTC()
	periodEnd := now.AddDate(0, 0, DIGEST_PERIOD_DAYS)

	events, err := ged.uow.Event().ListUpcomingEvents(spanCtx, now, DIGEST_MAX_EVENTS)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if len(events) == 0 {
		ged.logger.Printf("no upcoming events, skipping digest")
		telemetry.RecordErrorAndStatus(span, nil)
		return nil
	}

	messages, err := ged.buildMessages(events, now, periodEnd)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	resp, err := ged.model.Complete(spanCtx, domain.ModelRequest{
		Messages: messages,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	RecordDigestTokensUsed(spanCtx, resp.PromptTokens, resp.CompletionTokens)

	digest := domain.EventDigest{
		ID:          uuid.New(),
		Content:     sanitizeDigestContent(resp.Content),
		Model:       ged.modelName,
		PeriodStart: now,
		PeriodEnd:   periodEnd,
		CreatedAt:   now,
	}
	if digest.Content == "" {
		err := fmt.Errorf("model returned an empty digest")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err = ged.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.EventDigest().SaveEventDigest(spanCtx, digest); err != nil {
			return err
		}
		return uow.Outbox().CreateChatEvent(spanCtx, domain.ChatMessageEvent{
			Type: domain.EventType_DIGEST_GENERATED,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if ged.completedCh != nil {
		select {
		case ged.completedCh <- digest:
		default:
		}
	}

	return nil
}

// buildMessages decodes the embedded prompt and injects the period and the
// TOON encoded event list.
func (ged GenerateEventDigestImpl) buildMessages(events []domain.Event, periodStart, periodEnd time.Time) ([]domain.AgentMessage, error) {
	rows := make([]digestEventRow, 0, len(events))
	for _, event := range events {
		rows = append(rows, digestEventRow{
			Name:     event.Name,
			StartsAt: event.StartsAt.Format("2006-01-02 15:04"),
			Venue:    event.Venue,
			City:     event.City,
		})
	}
	encoded, err := toon.MarshalString(rows, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to encode events: %w", err)
	}

	file, err := digestPrompt.Open("prompts/event_digest.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open digest prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AgentMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode digest prompt: %w", err)
	}

	for i, msg := range messages {
		if msg.Role == domain.ChatRole_User {
			msg.Content = fmt.Sprintf(msg.Content,
				periodStart.Format("2006-01-02"),
				periodEnd.Format("2006-01-02"),
				encoded,
			)
			messages[i] = msg
		}
	}
	return messages, nil
}

// sanitizeDigestContent strips a surrounding markdown code fence if the model
// wrapped its answer in one.
func sanitizeDigestContent(content string) string {
	content = strings.TrimSpace(content)
	if match := codeFenceRe.FindStringSubmatch(content); match != nil {
		return strings.TrimSpace(match[1])
	}
	return content
}

// InitGenerateEventDigest initializes the GenerateEventDigest use case and registers it in the dependency container.
type InitGenerateEventDigest struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Model        domain.ModelClient         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	ModelName    string                     `config:"MODEL_NAME"`
}

// Initialize registers the GenerateEventDigest use case in the dependency container
func (iged InitGenerateEventDigest) Initialize(ctx context.Context) (context.Context, error) {
	// The completion channel is optional and only registered by tests or the workers host
	completedCh, _ := depend.Resolve[CompletedDigestChannel]()
	depend.Register[GenerateEventDigest](NewGenerateEventDigestImpl(
		iged.Uow, iged.Model, iged.TimeProvider, iged.Logger, iged.ModelName, completedCh,
	))
	return ctx, nil
}
