package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter             = otel.Meter("usecases")
	DigestTokensUsed  metric.Int64Counter
	ChatTurnsHandled  metric.Int64Counter
	SegmentsDelivered metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed when generating event digests (input + output)
	DigestTokensUsed, err = meter.Int64Counter(
		"digest_tokens_used_total",
		metric.WithDescription("Total model tokens consumed by digest generation"),
	)
	if err != nil {
		panic(err)
	}
	ChatTurnsHandled, err = meter.Int64Counter(
		"chat_turns_handled_total",
		metric.WithDescription("Total chat turns answered by the agent"),
	)
	if err != nil {
		panic(err)
	}
	SegmentsDelivered, err = meter.Int64Counter(
		"segments_delivered_total",
		metric.WithDescription("Total outbound messaging segments delivered"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordDigestTokensUsed records the tokens used by one digest generation.
func RecordDigestTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	DigestTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	DigestTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordChatTurn records one answered chat turn for a channel.
func RecordChatTurn(ctx context.Context, channel string) {
	ChatTurnsHandled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel),
	))
}

// RecordSegmentDelivered records one delivered outbound segment.
func RecordSegmentDelivered(ctx context.Context) {
	SegmentsDelivered.Add(ctx, 1)
}
