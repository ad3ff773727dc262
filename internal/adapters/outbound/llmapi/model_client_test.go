package llmapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"

	"github.com/festpass/festpass/internal/domain"
)

func TestModelClientAdapter_Complete(t *testing.T) {
	tests := map[string]struct {
		response    string
		statusCode  int
		req         domain.ModelRequest
		expectErr   bool
		expected    domain.ModelResponse
		validateReq func(*testing.T, *ChatRequest)
	}{
		"plain-answer": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"Jazz Night is on Friday."}}],"usage":{"prompt_tokens":42,"completion_tokens":7,"total_tokens":49}}`,
			statusCode: http.StatusOK,
			req: domain.ModelRequest{
				Messages: []domain.AgentMessage{
					{Role: domain.ChatRole_User, Content: "any jazz this week?"},
				},
			},
			expected: domain.ModelResponse{
				Content:          "Jazz Night is on Friday.",
				PromptTokens:     42,
				CompletionTokens: 7,
			},
		},
		"tool-call-answer": {
			response:   `{"choices":[{"message":{"role":"assistant","tool_calls":[{"type":"function","id":"call-1","function":{"name":"list_events","arguments":"{\"city\":\"Lisbon\",\"page\":1}"}}]}}]}`,
			statusCode: http.StatusOK,
			req: domain.ModelRequest{
				Messages: []domain.AgentMessage{
					{Role: domain.ChatRole_User, Content: "any jazz this week?"},
				},
				Tools: []domain.ToolDefinition{
					{
						Name:        "list_events",
						Description: "List published events",
						InputSchema: domain.ToolSchema{
							Type: "object",
							Properties: map[string]domain.ToolProperty{
								"city":  {Type: "string", Description: "Filter by city"},
								"page":  {Type: "integer"},
								"token": {Type: "string"},
							},
							Required: []string{"city"},
						},
					},
				},
			},
			expected: domain.ModelResponse{
				ToolCalls: []domain.ToolCall{
					{
						ID:   "call-1",
						Name: "list_events",
						Arguments: map[string]any{
							"city": "Lisbon",
							"page": float64(1),
						},
					},
				},
			},
			validateReq: func(t *testing.T, req *ChatRequest) {
				assert.Equal(t, "test-model", req.Model)
				assert.Len(t, req.Tools, 1)
				assert.Equal(t, "function", req.Tools[0].Type)
				assert.Equal(t, "list_events", req.Tools[0].Function.Name)
				assert.Equal(t, []string{"city"}, req.Tools[0].Function.Parameters.Required)
				assert.Len(t, req.Tools[0].Function.Parameters.Properties, 3)
			},
		},
		"malformed-tool-arguments": {
			response:   `{"choices":[{"message":{"role":"assistant","tool_calls":[{"type":"function","id":"call-1","function":{"name":"list_events","arguments":"{not json"}}]}}]}`,
			statusCode: http.StatusOK,
			req: domain.ModelRequest{
				Messages: []domain.AgentMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: true,
		},
		"no-choices": {
			response:   `{"choices":[]}`,
			statusCode: http.StatusOK,
			req: domain.ModelRequest{
				Messages: []domain.AgentMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req: domain.ModelRequest{
				Messages: []domain.AgentMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: true,
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			req: domain.ModelRequest{
				Messages: []domain.AgentMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *ChatRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.validateReq != nil {
					var req ChatRequest
					json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
					capturedReq = &req
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewAPIClient(server.URL, "", server.Client())
			adapter := NewModelClientAdapter(client, "test-model")

			resp, err := adapter.Complete(context.Background(), tt.req)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, resp)

			if tt.validateReq != nil && capturedReq != nil {
				tt.validateReq(t, capturedReq)
			}
		})
	}
}

func TestModelClientAdapter_Complete_ToolTurnRoundTrip(t *testing.T) {
	toolCallID := "call-1"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck

		assert.Len(t, req.Messages, 3)
		assert.Equal(t, "assistant", req.Messages[1].Role)
		assert.Len(t, req.Messages[1].ToolCalls, 1)
		assert.Equal(t, "list_events", req.Messages[1].ToolCalls[0].Function.Name)
		assert.JSONEq(t, `{"city":"Lisbon"}`, req.Messages[1].ToolCalls[0].Function.Arguments)
		assert.Equal(t, "tool", req.Messages[2].Role)
		assert.Equal(t, &toolCallID, req.Messages[2].ToolCallID)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"done"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "", server.Client())
	adapter := NewModelClientAdapter(client, "test-model")

	resp, err := adapter.Complete(context.Background(), domain.ModelRequest{
		Messages: []domain.AgentMessage{
			{Role: domain.ChatRole_User, Content: "any jazz this week?"},
			{
				Role: domain.ChatRole_Assistant,
				ToolCalls: []domain.ToolCall{
					{ID: toolCallID, Name: "list_events", Arguments: map[string]any{"city": "Lisbon"}},
				},
			},
			{
				Role:       domain.ChatRole_Tool,
				ToolCallID: &toolCallID,
				Content:    `{"events":[]}`,
			},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "done", resp.Content)
}

func TestInitModelClient_Initialize(t *testing.T) {
	i := InitModelClient{Model: "test-model"}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.ModelClient]()
	assert.NotNil(t, r)
	assert.NoError(t, err)
}
