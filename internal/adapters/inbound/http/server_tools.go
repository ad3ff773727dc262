package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

func (api FestPassServer) ListAgentTools(w http.ResponseWriter, r *http.Request) {
	tools, err := api.ListAgentToolsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing agent tools: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ToolListResp{Tools: []ToolDefinitionResp{}}
	for _, tool := range tools {
		resp.Tools = append(resp.Tools, toToolDefinition(tool))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api FestPassServer) ExecuteAgentTool(w http.ResponseWriter, r *http.Request) {
	var req ExecuteToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, ErrorResp{Error: Error{
			Code:    BADREQUEST,
			Message: fmt.Sprintf("invalid request body: %v", err),
		}})
		return
	}
	if req.Name == "" {
		respondError(w, ErrorResp{Error: Error{
			Code:    BADREQUEST,
			Message: "tool name is required",
		}})
		return
	}

	result, err := api.ExecuteAgentToolUseCase.Execute(r.Context(), req.Name, req.Arguments, bearerToken(r))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, ExecuteToolResp{
		Success:    result.Success,
		Data:       result.Data,
		Error:      result.Error,
		StatusCode: result.StatusCode,
	})
}

// bearerToken extracts the token of an Authorization Bearer header, if any.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(auth, "Bearer "); found {
		return token
	}
	return ""
}
