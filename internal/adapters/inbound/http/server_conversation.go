package http

import (
	"encoding/json"
	"net/http"
)

func (api FestPassServer) ListConversations(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	pageSize := queryInt(r, "page_size", defaultPageSize)

	conversations, hasMore, err := api.ListConversationsUseCase.Query(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ConversationListResp{
		Conversations: []ConversationResp{},
		Page:          page,
	}
	for _, c := range conversations {
		resp.Conversations = append(resp.Conversations, toConversation(c))
	}
	if hasMore {
		nextPage := page + 1
		resp.NextPage = &nextPage
	}
	if page > 1 {
		prevPage := page - 1
		resp.PreviousPage = &prevPage
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api FestPassServer) UpdateConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := pathUUID(w, r, "conversation_id")
	if !ok {
		return
	}

	var req UpdateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, ErrorResp{Error: Error{
			Code:    BADREQUEST,
			Message: "invalid request body",
		}})
		return
	}

	updatedConversation, err := api.UpdateConversationUseCase.Execute(r.Context(), conversationID, req.Title)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toConversation(updatedConversation))
}

func (api FestPassServer) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := pathUUID(w, r, "conversation_id")
	if !ok {
		return
	}

	if err := api.DeleteConversationUseCase.Execute(r.Context(), conversationID); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api FestPassServer) ListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := pathUUID(w, r, "conversation_id")
	if !ok {
		return
	}

	page := queryInt(r, "page", defaultPage)
	pageSize := queryInt(r, "page_size", defaultPageSize)

	messages, hasMore, err := api.ListMessagesUseCase.Query(r.Context(), conversationID, page, pageSize)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := MessageListResp{
		ConversationID: conversationID,
		Messages:       []MessageResp{},
		Page:           page,
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toMessage(msg))
	}
	if hasMore {
		nextPage := page + 1
		resp.NextPage = &nextPage
	}
	if page > 1 {
		prevPage := page - 1
		resp.PreviousPage = &prevPage
	}

	respondJSON(w, http.StatusOK, resp)
}
