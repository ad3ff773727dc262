// Package mcp exposes the agent tools over the Model Context Protocol so
// external MCP clients can list and invoke them without going through the
// chat orchestrator.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/usecases"
)

// ToolServer is the MCP server host of the FestPass backend.
type ToolServer struct {
	Port                    int                       `config:"MCP_PORT" default:"8090"`
	APIToken                string                    `config:"AGENT_API_TOKEN" default:""`
	Logger                  *log.Logger               `resolve:""`
	ListAgentToolsUseCase   usecases.ListAgentTools   `resolve:""`
	ExecuteAgentToolUseCase usecases.ExecuteAgentTool `resolve:""`
}

// Run builds the MCP server from the tool catalog and serves it over the
// streamable HTTP transport until the context is cancelled.
func (ts ToolServer) Run(ctx context.Context) error {
	server, err := ts.buildServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	handler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return server
	}, nil)

	s := &http.Server{
		Handler: handler,
		Addr:    fmt.Sprintf(":%d", ts.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		ts.Logger.Printf("ToolServer: Listening on port %d", ts.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			ts.Logger.Printf("ToolServer: error during shutdown: %v", err)
		} else {
			ts.Logger.Println("ToolServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// buildServer registers every derived tool on a fresh MCP server.
func (ts ToolServer) buildServer(ctx context.Context) (*mcpsdk.Server, error) {
	tools, err := ts.ListAgentToolsUseCase.Query(ctx)
	if err != nil {
		return nil, err
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "festpass-tools",
		Version: "1.0.0",
	}, nil)

	for _, tool := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: toInputSchema(tool.InputSchema),
		}, ts.toolHandler(tool.Name))
	}
	return server, nil
}

// toolHandler adapts one agent tool into an MCP call handler. Failed tool
// calls surface as tool results with IsError set, never as protocol errors.
func (ts ToolServer) toolHandler(name string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		args := map[string]any{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return textResult(fmt.Sprintf("invalid tool arguments: %v", err), true), nil
			}
		}

		result, err := ts.ExecuteAgentToolUseCase.Execute(ctx, name, args, ts.APIToken)
		if err != nil {
			return textResult(err.Error(), true), nil
		}
		if !result.Success {
			return textResult(result.Error, true), nil
		}

		data, err := json.Marshal(result.Data)
		if err != nil {
			return textResult(fmt.Sprintf("failed to encode tool result: %v", err), true), nil
		}
		return textResult(string(data), false), nil
	}
}

func textResult(text string, isErr bool) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isErr,
	}
}

// toInputSchema converts a tool input contract into a JSON schema.
func toInputSchema(s domain.ToolSchema) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.Properties))
	for propName, prop := range s.Properties {
		props[propName] = &jsonschema.Schema{
			Type:        prop.Type,
			Description: prop.Description,
		}
	}
	return &jsonschema.Schema{
		Type:       s.Type,
		Properties: props,
		Required:   s.Required,
	}
}
