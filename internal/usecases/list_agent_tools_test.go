package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/festpass/festpass/internal/domain"
)

func TestListAgentToolsImpl_Query(t *testing.T) {
	tools := []domain.ToolDefinition{
		{Name: "list_events", Description: "List upcoming events.", Method: "GET", Path: "/events"},
		{Name: "get_event", Description: "Get one event.", Method: "GET", Path: "/events/{event_id}"},
	}

	tests := map[string]struct {
		setExpectations func(catalog *domain.MockToolCatalog)
		expectedTools   []domain.ToolDefinition
		expectedErr     error
	}{
		"success": {
			setExpectations: func(catalog *domain.MockToolCatalog) {
				catalog.EXPECT().
					ListTools(mock.Anything).
					Return(tools, nil)
			},
			expectedTools: tools,
		},
		"catalog-error": {
			setExpectations: func(catalog *domain.MockToolCatalog) {
				catalog.EXPECT().
					ListTools(mock.Anything).
					Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockToolCatalog(t)
			tt.setExpectations(catalog)

			impl := NewListAgentToolsImpl(catalog)
			result, err := impl.Query(context.Background())

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTools, result)
		})
	}
}
