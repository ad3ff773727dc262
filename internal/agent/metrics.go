package agent

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("agent")
	modelTokensUsed metric.Int64Counter
	toolCallsTotal  metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by the model (input + output)
	modelTokensUsed, err = meter.Int64Counter(
		"model_tokens_used_total",
		metric.WithDescription("Total model tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
	toolCallsTotal, err = meter.Int64Counter(
		"agent_tool_calls_total",
		metric.WithDescription("Total agent tool calls executed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordModelCall records the number of tokens used in one model completion.
func RecordModelCall(ctx context.Context, promptTokens, completionTokens int) {
	modelTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	modelTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordToolCall records the outcome of one tool call.
func RecordToolCall(ctx context.Context, tool string, success bool) {
	toolCallsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.Bool("success", success),
	))
}
