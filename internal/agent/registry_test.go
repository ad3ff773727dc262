package agent

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festpass/festpass/internal/domain"
)

const registryTestSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "festpass API", "version": "1.0.0"},
  "paths": {
    "/events": {
      "get": {
        "summary": "List published events",
        "x-agent-tool": {"name": "list_events"},
        "parameters": [
          {"name": "city", "in": "query", "required": false, "schema": {"type": "string"}, "description": "Filter by city"},
          {"name": "page", "in": "query", "required": true, "schema": {"type": "integer"}}
        ],
        "responses": {"200": {"description": "OK"}}
      },
      "post": {
        "summary": "Create an event",
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/events/{event_id}": {
      "get": {
        "summary": "Get one event",
        "x-agent-tool": {"name": "get_event", "description": "Fetch a single event by its identifier"},
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/events/{event_id}/tickets": {
      "get": {
        "summary": "List ticket categories of an event",
        "x-agent-tool": {"name": "list_ticket_categories", "enabled": true},
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/orders": {
      "post": {
        "summary": "Place an order",
        "x-agent-tool": {"name": "place_order", "enabled": false},
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/feedback": {
      "post": {
        "summary": "Send feedback",
        "x-agent-tool": {"name": "send_feedback"},
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "message": {"type": "string", "description": "Feedback text"},
                  "rating": {"type": "integer"}
                },
                "required": ["message"]
              }
            }
          }
        },
        "responses": {"202": {"description": "Accepted"}}
      }
    },
    "/internal/malformed": {
      "get": {
        "summary": "Marker without a name",
        "x-agent-tool": {"enabled": true},
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`

func loadRegistryTestDoc(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromData([]byte(registryTestSpec))
	require.NoError(t, err)
	return doc
}

func TestRegistry_Derive_OnlyMarkedOperations(t *testing.T) {
	registry := NewRegistry(loadRegistryTestDoc(t), "http://api.local")

	defs := registry.Derive()

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	// Sorted path order; unmarked, disabled and malformed operations are
	// never exposed.
	assert.Equal(t, []string{"list_events", "get_event", "list_ticket_categories", "send_feedback"}, names)
}

func TestRegistry_Derive_SchemaSources(t *testing.T) {
	registry := NewRegistry(loadRegistryTestDoc(t), "http://api.local")

	defs := registry.Derive()
	byName := map[string]domain.ToolDefinition{}
	for _, def := range defs {
		byName[def.Name] = def
	}

	tests := map[string]struct {
		tool       string
		properties []string
		required   []string
	}{
		"QueryParameters": {
			tool:       "list_events",
			properties: []string{"city", "page"},
			required:   []string{"page"},
		},
		"PathPlaceholder": {
			tool:       "get_event",
			properties: []string{"event_id"},
			required:   []string{"event_id"},
		},
		"BodyProperties": {
			tool:       "send_feedback",
			properties: []string{"message", "rating"},
			required:   []string{"message"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			def, ok := byName[tt.tool]
			require.True(t, ok)
			assert.Equal(t, "object", def.InputSchema.Type)
			assert.Len(t, def.InputSchema.Properties, len(tt.properties))
			for _, prop := range tt.properties {
				assert.Contains(t, def.InputSchema.Properties, prop)
			}
			assert.Equal(t, tt.required, def.InputSchema.Required)
		})
	}
}

func TestRegistry_Derive_MarkerDescriptionWins(t *testing.T) {
	registry := NewRegistry(loadRegistryTestDoc(t), "http://api.local")

	defs := registry.Derive()
	for _, def := range defs {
		if def.Name == "get_event" {
			assert.Equal(t, "Fetch a single event by its identifier", def.Description)
			return
		}
	}
	t.Fatal("get_event not derived")
}

func TestRegistry_Derive_RoutingDetails(t *testing.T) {
	registry := NewRegistry(loadRegistryTestDoc(t), "http://api.local")

	defs := registry.Derive()
	require.NotEmpty(t, defs)
	for _, def := range defs {
		assert.Equal(t, "http://api.local", def.BaseURL)
		assert.NotEmpty(t, def.Method)
		assert.NotEmpty(t, def.Path)
	}
}

func TestRegistry_Derive_EmptyDocument(t *testing.T) {
	registry := NewRegistry(&openapi3.T{}, "http://api.local")

	assert.Empty(t, registry.Derive())
}
