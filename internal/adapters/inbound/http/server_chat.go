package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/usecases"
)

func (api FestPassServer) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, ErrorResp{Error: Error{
			Code:    BADREQUEST,
			Message: fmt.Sprintf("invalid request body: %v", err),
		}})
		return
	}

	channel := domain.ResponseChannel_Web
	if req.Channel != "" {
		channel = domain.ResponseChannel(req.Channel)
		if channel != domain.ResponseChannel_Web && channel != domain.ResponseChannel_Messaging {
			respondError(w, ErrorResp{Error: Error{
				Code:    BADREQUEST,
				Message: fmt.Sprintf("unknown channel: %s", req.Channel),
			}})
			return
		}
	}

	var opts []usecases.ChatWithAgentOption
	if req.ConversationID != nil {
		opts = append(opts, usecases.WithConversationID(*req.ConversationID))
	}
	if len(req.UserContext) > 0 {
		opts = append(opts, usecases.WithUserContext(req.UserContext))
	}

	result, err := api.ChatWithAgentUseCase.Execute(r.Context(), req.Message, channel, opts...)
	if err != nil {
		api.Logger.Printf("Error handling chat turn: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatResp(result))
}
