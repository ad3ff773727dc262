package domain

import (
	"context"
)

// ResponseChannel identifies the surface a chat answer is rendered for.
type ResponseChannel string

const (
	ResponseChannel_Messaging ResponseChannel = "messaging"
	ResponseChannel_Web       ResponseChannel = "web"
)

// AgentMessage is one entry in the model conversation history. The history is
// append-only; orchestration never rewrites earlier entries.
type AgentMessage struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolCall
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ModelRequest is a full-history completion request to the model.
type ModelRequest struct {
	Messages    []AgentMessage
	Tools       []ToolDefinition
	Temperature *float64
	MaxTokens   *int
}

// ModelResponse is the model's answer to a completion request.
type ModelResponse struct {
	Content          string
	ToolCalls        []ToolCall
	PromptTokens     int
	CompletionTokens int
}

// ModelClient defines the interface for requesting completions from the model.
type ModelClient interface {
	Complete(ctx context.Context, req ModelRequest) (ModelResponse, error)
}

// AgentResult is the outcome of one orchestrated conversation turn.
type AgentResult struct {
	Answer    string
	ToolsUsed []ToolUsage
	RawData   []any
}

// AgentOrchestrator runs the bounded tool-calling loop for a user query.
type AgentOrchestrator interface {
	Run(ctx context.Context, query string, history []AgentMessage) (AgentResult, error)
}
