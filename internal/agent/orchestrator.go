package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/common"
	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/formatter"
	"github.com/festpass/festpass/internal/telemetry"
)

const (
	// MAX_MODEL_CALLS caps how many times the model is consulted for one
	// query, including the initial call.
	MAX_MODEL_CALLS = 3
	// MAX_TOOL_RESULT_BYTES is the ceiling on a serialized tool result before
	// it is truncated for the model.
	MAX_TOOL_RESULT_BYTES = 4000

	fallbackNoAnswerMessage = "Sorry, I couldn't process your request right now. Please try again."
)

// Orchestrator drives the model through a bounded tool-calling loop. Tool
// calls are executed sequentially in the order the model requested them, and
// the conversation history is append-only.
type Orchestrator struct {
	model     domain.ModelClient
	catalog   domain.ToolCatalog
	executor  domain.ToolExecutor
	logger    *log.Logger
	authToken string
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(model domain.ModelClient, catalog domain.ToolCatalog, executor domain.ToolExecutor, logger *log.Logger, authToken string) *Orchestrator {
	return &Orchestrator{
		model:     model,
		catalog:   catalog,
		executor:  executor,
		logger:    logger,
		authToken: authToken,
	}
}

// Run answers a user query, consulting the model at most MAX_MODEL_CALLS
// times. Tool failures never abort the loop; they are surfaced to the model as
// error-shaped tool messages.
func (o *Orchestrator) Run(ctx context.Context, query string, history []domain.AgentMessage) (domain.AgentResult, error) {
	ctx, span := telemetry.Start(ctx)
	defer span.End()

	tools, err := o.catalog.ListTools(ctx)
	if err != nil {
		// A missing tool list degrades to a plain completion.
		o.logger.Printf("listing agent tools: %v", err)
		tools = nil
	}
	defsByName := make(map[string]domain.ToolDefinition, len(tools))
	for _, def := range tools {
		defsByName[def.Name] = def
	}

	messages := make([]domain.AgentMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, domain.AgentMessage{Role: domain.ChatRole_User, Content: query})

	var toolsUsed []domain.ToolUsage
	var rawData []any

	for call := 0; call < MAX_MODEL_CALLS; call++ {
		resp, err := o.model.Complete(ctx, domain.ModelRequest{Messages: messages, Tools: tools})
		if err != nil {
			o.logger.Printf("model completion failed: %v", err)
			telemetry.RecordErrorAndStatus(span, err)
			return domain.AgentResult{
				Answer:    o.fallbackAnswer(toolsUsed, rawData),
				ToolsUsed: toolsUsed,
				RawData:   rawData,
			}, nil
		}
		RecordModelCall(ctx, resp.PromptTokens, resp.CompletionTokens)

		if len(resp.ToolCalls) == 0 {
			telemetry.RecordErrorAndStatus(span, nil)
			return o.finalResult(resp.Content, toolsUsed, rawData), nil
		}

		if call == MAX_MODEL_CALLS-1 {
			// Out of model budget; answer from what was collected so far.
			o.logger.Printf("model requested tools after %d calls, stopping", MAX_MODEL_CALLS)
			telemetry.RecordErrorAndStatus(span, nil)
			return o.finalResult(resp.Content, toolsUsed, rawData), nil
		}

		messages = append(messages, domain.AgentMessage{
			Role:      domain.ChatRole_Assistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, toolCall := range resp.ToolCalls {
			content := o.runToolCall(ctx, defsByName, toolCall, &toolsUsed, &rawData)
			messages = append(messages, domain.AgentMessage{
				Role:       domain.ChatRole_Tool,
				Content:    content,
				ToolCallID: common.Ptr(toolCall.ID),
			})
		}
	}

	// Unreachable: the loop always returns on the last call.
	return domain.AgentResult{Answer: fallbackNoAnswerMessage, ToolsUsed: toolsUsed, RawData: rawData}, nil
}

// runToolCall executes one requested tool call and returns the tool message
// content fed back to the model.
func (o *Orchestrator) runToolCall(ctx context.Context, defsByName map[string]domain.ToolDefinition, call domain.ToolCall, toolsUsed *[]domain.ToolUsage, rawData *[]any) string {
	def, known := defsByName[call.Name]
	if !known {
		return errorToolMessage("unknown_tool", fmt.Sprintf("tool %s is not available", call.Name))
	}

	*toolsUsed = append(*toolsUsed, domain.ToolUsage{Name: call.Name, Arguments: call.Arguments})

	if name, value, ok := invalidIdentifierArg(def, call.Arguments); ok {
		return errorToolMessage("invalid_identifier", fmt.Sprintf("the value %q for %s is not a valid identifier", value, name))
	}

	result := o.executor.Execute(ctx, def, call.Arguments, o.authToken)
	RecordToolCall(ctx, call.Name, result.Success)
	if !result.Success {
		o.logger.Printf("tool %s failed: %s", call.Name, result.Error)
		return errorToolMessage("tool_failed", result.Error)
	}

	*rawData = append(*rawData, result.Data)

	payload, err := json.Marshal(result.Data)
	if err != nil {
		return errorToolMessage("tool_failed", fmt.Sprintf("encoding tool %s result: %v", call.Name, err))
	}
	if len(payload) > MAX_TOOL_RESULT_BYTES {
		payload = TruncateJSON(payload, MAX_TOOL_RESULT_BYTES)
		if string(payload) == "[]" {
			o.logger.Printf("tool %s result truncated to an empty array", call.Name)
		}
	}
	return string(payload)
}

// invalidIdentifierArg reports the first identifier-shaped path argument that
// is not a valid UUID. Only placeholders named id or ending in _id are
// validated.
func invalidIdentifierArg(def domain.ToolDefinition, args map[string]any) (string, string, bool) {
	for _, match := range pathPlaceholderRe.FindAllStringSubmatch(def.Path, -1) {
		name := match[1]
		if name != "id" && !strings.HasSuffix(name, "_id") {
			continue
		}
		raw, ok := args[name]
		if !ok {
			continue
		}
		value := fmt.Sprint(raw)
		if _, err := uuid.Parse(value); err != nil {
			return name, value, true
		}
	}
	return "", "", false
}

func (o *Orchestrator) finalResult(answer string, toolsUsed []domain.ToolUsage, rawData []any) domain.AgentResult {
	if strings.TrimSpace(answer) == "" {
		answer = o.fallbackAnswer(toolsUsed, rawData)
	}
	return domain.AgentResult{Answer: answer, ToolsUsed: toolsUsed, RawData: rawData}
}

// fallbackAnswer synthesizes an answer when the model cannot produce one,
// preferring collected tool data over a generic apology.
func (o *Orchestrator) fallbackAnswer(toolsUsed []domain.ToolUsage, rawData []any) string {
	var items []map[string]any
	for _, raw := range rawData {
		items = append(items, formatter.ExtractItems(raw)...)
	}
	items = formatter.DedupeByID(items)

	if len(items) > 0 {
		names := make([]string, 0, 3)
		for _, item := range items {
			if len(names) == 3 {
				break
			}
			if name := itemLabel(item); name != "" {
				names = append(names, name)
			}
		}
		answer := fmt.Sprintf("I found %d result(s) for your request", len(items))
		if len(names) > 0 {
			answer += ": " + strings.Join(names, ", ")
		}
		return answer + "."
	}

	if len(toolsUsed) > 0 {
		names := make([]string, 0, len(toolsUsed))
		for _, usage := range toolsUsed {
			names = append(names, usage.Name)
		}
		return fmt.Sprintf("I tried %s but couldn't put together a full answer. Please try again.", strings.Join(names, ", "))
	}

	return fallbackNoAnswerMessage
}

func itemLabel(item map[string]any) string {
	for _, key := range []string{"name", "title"} {
		if value, ok := item[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func errorToolMessage(code, message string) string {
	payload, _ := json.Marshal(map[string]string{
		"error":   code,
		"message": message,
	})
	return string(payload)
}

// InitAgentOrchestrator is responsible for initializing the orchestrator dependency.
type InitAgentOrchestrator struct {
	Model     domain.ModelClient  `resolve:""`
	Catalog   domain.ToolCatalog  `resolve:""`
	Executor  domain.ToolExecutor `resolve:""`
	Logger    *log.Logger         `resolve:""`
	AuthToken string              `config:"AGENT_API_TOKEN" default:""`
}

// Initialize registers the AgentOrchestrator in the dependency container.
func (iao InitAgentOrchestrator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.AgentOrchestrator](
		NewOrchestrator(iao.Model, iao.Catalog, iao.Executor, iao.Logger, iao.AuthToken),
	)
	return ctx, nil
}
