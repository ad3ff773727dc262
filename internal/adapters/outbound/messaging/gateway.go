// Package messaging delivers outbound segments to the messaging provider.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// WebhookGateway implements domain.SegmentGateway by posting segments to the
// provider's webhook endpoint.
type WebhookGateway struct {
	endpoint string
	http     *http.Client
}

// NewWebhookGateway creates a new instance of WebhookGateway
func NewWebhookGateway(endpoint string, httpClient *http.Client) WebhookGateway {
	return WebhookGateway{
		endpoint: endpoint,
		http:     httpClient,
	}
}

// segmentPayload is the wire shape sent to the provider.
type segmentPayload struct {
	ConversationID string             `json:"conversation_id"`
	Recipient      string             `json:"recipient"`
	Text           string             `json:"text"`
	Media          []domain.MediaItem `json:"media,omitempty"`
}

// SendSegment posts the segment to the webhook endpoint. Any non-2xx response
// is treated as a delivery failure.
func (g WebhookGateway) SendSegment(ctx context.Context, segment domain.SegmentEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("conversation_id", segment.ConversationID.String()),
		),
	)
	defer span.End()

	body, err := json.Marshal(segmentPayload{
		ConversationID: segment.ConversationID.String(),
		Recipient:      segment.Recipient,
		Text:           segment.Text,
		Media:          segment.Media,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	req, err := http.NewRequestWithContext(spanCtx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("messaging provider returned status %d", resp.StatusCode)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// LogGateway implements domain.SegmentGateway by logging segments instead of
// delivering them. Registered when no webhook endpoint is configured.
type LogGateway struct {
	logger *log.Logger
}

// NewLogGateway creates a new instance of LogGateway
func NewLogGateway(logger *log.Logger) LogGateway {
	return LogGateway{logger: logger}
}

// SendSegment logs the segment and reports success.
func (g LogGateway) SendSegment(ctx context.Context, segment domain.SegmentEvent) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	g.logger.Printf("segment for %s (conversation %s): %s",
		segment.Recipient, segment.ConversationID, segment.Text)
	return nil
}

// InitSegmentGateway initializes the SegmentGateway implementation.
// When MESSAGING_WEBHOOK_URL is "-", segments are logged instead of delivered.
type InitSegmentGateway struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	WebhookURL string       `config:"MESSAGING_WEBHOOK_URL" default:"-"`
}

// Initialize registers the SegmentGateway in the dependency container
func (isg InitSegmentGateway) Initialize(ctx context.Context) (context.Context, error) {
	if isg.WebhookURL == "-" {
		depend.Register[domain.SegmentGateway](NewLogGateway(isg.Logger))
		return ctx, nil
	}
	depend.Register[domain.SegmentGateway](NewWebhookGateway(isg.WebhookURL, isg.HttpClient))
	return ctx, nil
}
