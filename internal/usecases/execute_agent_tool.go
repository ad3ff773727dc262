package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// ExecuteAgentTool defines the interface for the ExecuteAgentTool use case
type ExecuteAgentTool interface {
	// Execute runs one tool by name with the given arguments and caller token.
	Execute(ctx context.Context, name string, args map[string]any, authToken string) (domain.ToolCallResult, error)
}

// ExecuteAgentToolImpl is the implementation of the ExecuteAgentTool use case
type ExecuteAgentToolImpl struct {
	catalog  domain.ToolCatalog
	executor domain.ToolExecutor
}

// NewExecuteAgentToolImpl creates a new instance of ExecuteAgentToolImpl
func NewExecuteAgentToolImpl(catalog domain.ToolCatalog, executor domain.ToolExecutor) ExecuteAgentToolImpl {
	return ExecuteAgentToolImpl{
		catalog:  catalog,
		executor: executor,
	}
}

// Execute runs one tool by name with the given arguments and caller token.
func (eat ExecuteAgentToolImpl) Execute(ctx context.Context, name string, args map[string]any, authToken string) (domain.ToolCallResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tools, err := eat.catalog.ListTools(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolCallResult{}, err
	}

	var tool *domain.ToolDefinition
	for i := range tools {
		if tools[i].Name == name {
			tool = &tools[i]
			break
		}
	}
	if tool == nil {
		err := domain.NewNotFoundErr(fmt.Sprintf("tool %s not found", name))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolCallResult{}, err
	}

	result := eat.executor.Execute(spanCtx, *tool, args, authToken)
	if !result.Success && result.StatusCode != nil && *result.StatusCode == 401 {
		err := domain.NewAuthenticationErr("invalid tool execution token")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolCallResult{}, err
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return result, nil
}

// InitExecuteAgentTool initializes the ExecuteAgentTool use case and registers it in the dependency container.
type InitExecuteAgentTool struct {
	Catalog  domain.ToolCatalog  `resolve:""`
	Executor domain.ToolExecutor `resolve:""`
}

// Initialize registers the ExecuteAgentTool use case in the dependency container
func (ieat InitExecuteAgentTool) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExecuteAgentTool](NewExecuteAgentToolImpl(ieat.Catalog, ieat.Executor))
	return ctx, nil
}
