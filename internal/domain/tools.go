package domain

import (
	"context"
)

// ToolProperty describes a single input parameter of an agent tool.
type ToolProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ToolSchema is the JSON-Schema-shaped input contract of an agent tool.
type ToolSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required,omitempty"`
}

// ToolDefinition describes one API operation exposed to the model as a tool.
// Method, Path and BaseURL are routing details used by the executor and are
// never shown to callers of the tool listing surface.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema ToolSchema
	Method      string
	Path        string
	BaseURL     string
}

// ToolCallResult is the outcome of a single tool invocation. StatusCode is nil
// when the call never produced an HTTP response (transport failure or a
// short-circuit before dispatch).
type ToolCallResult struct {
	Success    bool
	Data       any
	Error      string
	StatusCode *int
}

// ToolUsage records one tool the agent invoked while answering a query.
type ToolUsage struct {
	Name      string
	Arguments map[string]any
}

// ToolCatalog lists the tools currently derivable from the API description.
type ToolCatalog interface {
	// ListTools returns the tool definitions derived from the API description.
	ListTools(ctx context.Context) ([]ToolDefinition, error)
}

// ToolExecutor performs a tool call against the backing API. Implementations
// never panic and never return errors; every failure is folded into the result.
type ToolExecutor interface {
	Execute(ctx context.Context, def ToolDefinition, args map[string]any, authToken string) ToolCallResult
}
