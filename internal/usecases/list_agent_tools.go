package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// ListAgentTools defines the interface for the ListAgentTools use case
type ListAgentTools interface {
	// Query returns the tool definitions the agent can call.
	Query(ctx context.Context) ([]domain.ToolDefinition, error)
}

// ListAgentToolsImpl is the implementation of the ListAgentTools use case
type ListAgentToolsImpl struct {
	catalog domain.ToolCatalog
}

// NewListAgentToolsImpl creates a new instance of ListAgentToolsImpl
func NewListAgentToolsImpl(catalog domain.ToolCatalog) ListAgentToolsImpl {
	return ListAgentToolsImpl{
		catalog: catalog,
	}
}

// Query returns the tool definitions the agent can call.
func (lat ListAgentToolsImpl) Query(ctx context.Context) ([]domain.ToolDefinition, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tools, err := lat.catalog.ListTools(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tools, nil
}

// InitListAgentTools initializes the ListAgentTools use case and registers it in the dependency container.
type InitListAgentTools struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the ListAgentTools use case in the dependency container
func (ilat InitListAgentTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAgentTools](NewListAgentToolsImpl(ilat.Catalog))
	return ctx, nil
}
