package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/festpass/festpass/internal/common"
	"github.com/festpass/festpass/internal/domain"
)

func TestExecuteAgentToolImpl_Execute(t *testing.T) {
	listEventsTool := domain.ToolDefinition{
		Name:   "list_events",
		Method: "GET",
		Path:   "/events",
	}

	tests := map[string]struct {
		toolName        string
		setExpectations func(catalog *domain.MockToolCatalog, executor *domain.MockToolExecutor)
		wantResult      domain.ToolCallResult
		wantErr         error
	}{
		"success": {
			toolName: "list_events",
			setExpectations: func(catalog *domain.MockToolCatalog, executor *domain.MockToolExecutor) {
				catalog.EXPECT().ListTools(mock.Anything).
					Return([]domain.ToolDefinition{listEventsTool}, nil)
				executor.EXPECT().
					Execute(mock.Anything, listEventsTool, map[string]any{"city": "Lisbon"}, "secret").
					Return(domain.ToolCallResult{Success: true, Data: []any{}})
			},
			wantResult: domain.ToolCallResult{Success: true, Data: []any{}},
		},
		"tool-not-found": {
			toolName: "drop_database",
			setExpectations: func(catalog *domain.MockToolCatalog, executor *domain.MockToolExecutor) {
				catalog.EXPECT().ListTools(mock.Anything).
					Return([]domain.ToolDefinition{listEventsTool}, nil)
			},
			wantErr: domain.NewNotFoundErr("tool drop_database not found"),
		},
		"catalog-error": {
			toolName: "list_events",
			setExpectations: func(catalog *domain.MockToolCatalog, executor *domain.MockToolExecutor) {
				catalog.EXPECT().ListTools(mock.Anything).
					Return(nil, errors.New("spec unreadable"))
			},
			wantErr: errors.New("spec unreadable"),
		},
		"auth-rejection-becomes-authentication-error": {
			toolName: "list_events",
			setExpectations: func(catalog *domain.MockToolCatalog, executor *domain.MockToolExecutor) {
				catalog.EXPECT().ListTools(mock.Anything).
					Return([]domain.ToolDefinition{listEventsTool}, nil)
				executor.EXPECT().
					Execute(mock.Anything, listEventsTool, mock.Anything, mock.Anything).
					Return(domain.ToolCallResult{
						Success:    false,
						Error:      "authentication failed",
						StatusCode: common.Ptr(401),
					})
			},
			wantErr: domain.NewAuthenticationErr("invalid tool execution token"),
		},
		"failed-call-is-not-an-error": {
			toolName: "list_events",
			setExpectations: func(catalog *domain.MockToolCatalog, executor *domain.MockToolExecutor) {
				catalog.EXPECT().ListTools(mock.Anything).
					Return([]domain.ToolDefinition{listEventsTool}, nil)
				executor.EXPECT().
					Execute(mock.Anything, listEventsTool, mock.Anything, mock.Anything).
					Return(domain.ToolCallResult{
						Success:    false,
						Error:      "tool returned status 500",
						StatusCode: common.Ptr(500),
					})
			},
			wantResult: domain.ToolCallResult{
				Success:    false,
				Error:      "tool returned status 500",
				StatusCode: common.Ptr(500),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockToolCatalog(t)
			executor := domain.NewMockToolExecutor(t)
			if tt.setExpectations != nil {
				tt.setExpectations(catalog, executor)
			}

			impl := NewExecuteAgentToolImpl(catalog, executor)
			result, err := impl.Execute(context.Background(), tt.toolName, map[string]any{"city": "Lisbon"}, "secret")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, result)
		})
	}
}
