package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// queryInt reads an integer query parameter, falling back when absent or malformed.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// pathUUID parses a UUID path value, writing a 400 response on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		respondError(w, ErrorResp{Error: Error{
			Code:    BADREQUEST,
			Message: "invalid " + name,
		}})
		return uuid.Nil, false
	}
	return id, true
}

func (api FestPassServer) ListEvents(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	pageSize := queryInt(r, "page_size", defaultPageSize)

	events, hasMore, err := api.ListEventsUseCase.Query(r.Context(), page, pageSize)
	if err != nil {
		api.Logger.Printf("Error listing events: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := EventListResp{
		Items: []EventResp{},
		Page:  page,
	}
	for _, e := range events {
		resp.Items = append(resp.Items, toEvent(e))
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

func (api FestPassServer) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "event_id")
	if !ok {
		return
	}

	result, err := api.GetEventUseCase.Query(r.Context(), eventID)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := EventDetailResp{
		Event:            toEvent(result.Event),
		TicketCategories: []TicketCategoryResp{},
	}
	for _, category := range result.TicketCategories {
		resp.TicketCategories = append(resp.TicketCategories, toTicketCategory(category))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api FestPassServer) ListEventTicketCategories(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "event_id")
	if !ok {
		return
	}

	categories, err := api.ListTicketCategories.Query(r.Context(), eventID)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := make([]TicketCategoryResp, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, toTicketCategory(category))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api FestPassServer) GetUserCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	credits, err := api.GetUserCreditsUseCase.Query(r.Context(), userID)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, UserCreditsResp{UserID: userID, Credits: credits})
}

func (api FestPassServer) GetEventDigest(w http.ResponseWriter, r *http.Request) {
	digest, err := api.GetEventDigestUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, EventDigestResp{
		Content:     digest.Content,
		Model:       digest.Model,
		PeriodStart: digest.PeriodStart,
		PeriodEnd:   digest.PeriodEnd,
		CreatedAt:   digest.CreatedAt,
	})
}
