package llmapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// ModelClient adapts APIClient to the domain.ModelClient interface
type ModelClient struct {
	client APIClient
	model  string
}

// NewModelClientAdapter creates a new adapter
func NewModelClientAdapter(client APIClient, model string) ModelClient {
	return ModelClient{client: client, model: model}
}

// Complete implements domain.ModelClient.Complete
func (a ModelClient) Complete(ctx context.Context, req domain.ModelRequest) (domain.ModelResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       a.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
		Tools:       mapTools(req.Tools),
	}

	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
			ToolCalls:  mapToolCallsToWire(msg.ToolCalls),
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelResponse{}, err
	}

	choice := resp.Choices[0]
	toolCalls, err := mapToolCallsFromWire(choice.Message.ToolCalls)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelResponse{}, err
	}

	out := domain.ModelResponse{
		Content:   choice.Message.Content,
		ToolCalls: toolCalls,
	}
	if resp.Usage != nil {
		out.PromptTokens = resp.Usage.PromptTokens
		out.CompletionTokens = resp.Usage.CompletionTokens
	}
	return out, nil
}

// mapTools converts tool definitions to the OpenAI function tool shape
func mapTools(defs []domain.ToolDefinition) []Tool {
	if len(defs) == 0 {
		return nil
	}
	tools := make([]Tool, len(defs))
	for i, def := range defs {
		properties := make(map[string]ToolFuncParameterDetail, len(def.InputSchema.Properties))
		for name, prop := range def.InputSchema.Properties {
			properties[name] = ToolFuncParameterDetail{
				Type:        prop.Type,
				Description: prop.Description,
			}
		}
		tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Name:        def.Name,
				Description: def.Description,
				Parameters: ToolFuncParameters{
					Type:       "object",
					Properties: properties,
					Required:   def.InputSchema.Required,
				},
			},
		}
	}
	return tools
}

func mapToolCallsToWire(calls []domain.ToolCall) []ToolCall {
	if len(calls) == 0 {
		return nil
	}
	out := make([]ToolCall, len(calls))
	for i, call := range calls {
		args, err := json.Marshal(call.Arguments)
		if err != nil {
			args = []byte("{}")
		}
		out[i] = ToolCall{
			Type: "function",
			ID:   call.ID,
			Function: ToolCallFunction{
				Name:      call.Name,
				Arguments: string(args),
			},
		}
	}
	return out
}

func mapToolCallsFromWire(calls []ToolCall) ([]domain.ToolCall, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	out := make([]domain.ToolCall, len(calls))
	for i, call := range calls {
		args := map[string]any{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("decode arguments of tool call %s: %w", call.Function.Name, err)
			}
		}
		out[i] = domain.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: args,
		}
	}
	return out, nil
}

// InitModelClient initializes the ModelClient dependency
type InitModelClient struct {
	HttpClient *http.Client `resolve:""`
	APIHost    string       `config:"MODEL_API_URL"`
	APIKey     string       `config:"MODEL_API_KEY" default:""`
	Model      string       `config:"MODEL_NAME"`
}

// Initialize registers the ModelClient
func (i InitModelClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ModelClient](NewModelClientAdapter(
		NewAPIClient(i.APIHost, i.APIKey, i.HttpClient),
		i.Model,
	))
	return ctx, nil
}
