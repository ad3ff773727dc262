//go:build integration

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	api "github.com/festpass/festpass/internal/adapters/inbound/http"
	"github.com/festpass/festpass/internal/domain"
)

const baseURL = "http://localhost:8080"

func getJSON(t *testing.T, path string, expectedStatus int, out any) {
	t.Helper()

	resp, err := http.Get(baseURL + path)
	require.NoError(t, err, "failed to call %s", path)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status for %s", path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "failed to decode response of %s", path)
	}
}

func postJSON(t *testing.T, path string, body any, expectedStatus int, out any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err, "failed to serialize request body for %s", path)

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err, "failed to call %s", path)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status for %s", path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "failed to decode response of %s", path)
	}
}

func TestFestPassApp_EventAPI(t *testing.T) {
	eventRepo, err := depend.Resolve[domain.EventRepository]()
	require.NoError(t, err, "failed to resolve event repository")
	categoryRepo, err := depend.Resolve[domain.TicketCategoryRepository]()
	require.NoError(t, err, "failed to resolve ticket category repository")

	events := []domain.Event{
		{
			ID:       uuid.New(),
			Name:     "Integration Jazz Night",
			StartsAt: time.Now().Add(72 * time.Hour).UTC(),
			Venue:    "Blue Hall",
			City:     "Lisbon",
			Status:   domain.EventStatus_Published,
		},
		{
			ID:       uuid.New(),
			Name:     "Integration Indie Fest",
			StartsAt: time.Now().Add(96 * time.Hour).UTC(),
			Venue:    "River Stage",
			City:     "Porto",
			Status:   domain.EventStatus_Published,
		},
	}

	t.Run("seed-events", func(t *testing.T) {
		for _, event := range events {
			require.NoError(t, eventRepo.CreateEvent(t.Context(), event), "failed to seed event %s", event.Name)
		}
		require.NoError(t, categoryRepo.CreateTicketCategory(t.Context(), domain.TicketCategory{
			ID:        uuid.New(),
			EventID:   events[0].ID,
			Name:      "General",
			Price:     35,
			Currency:  "EUR",
			Available: 100,
		}), "failed to seed ticket category")
	})

	t.Run("health-check", func(t *testing.T) {
		getJSON(t, "/healthz", http.StatusOK, nil)
	})

	t.Run("list-events", func(t *testing.T) {
		var resp api.EventListResp
		getJSON(t, "/events", http.StatusOK, &resp)
		require.Equal(t, 1, resp.Page, "expected first page")
		require.Len(t, resp.Items, len(events), "expected all seeded events in the list")
		require.Equal(t, "Integration Jazz Night", resp.Items[0].Name, "expected events ordered by start time")
	})

	t.Run("get-event-with-ticket-categories", func(t *testing.T) {
		var resp api.EventDetailResp
		getJSON(t, "/events/"+events[0].ID.String(), http.StatusOK, &resp)
		require.Equal(t, events[0].ID, resp.Event.ID)
		require.Len(t, resp.TicketCategories, 1, "expected the seeded ticket category")
		require.Equal(t, "General", resp.TicketCategories[0].Name)
	})

	t.Run("get-unknown-event", func(t *testing.T) {
		var resp api.ErrorResp
		getJSON(t, "/events/"+uuid.NewString(), http.StatusNotFound, &resp)
		require.Equal(t, api.NOTFOUND, resp.Error.Code)
	})

	t.Run("digest-not-generated-yet", func(t *testing.T) {
		var resp api.ErrorResp
		getJSON(t, "/digest", http.StatusNotFound, &resp)
		require.Equal(t, api.NOTFOUND, resp.Error.Code)
	})
}

func TestFestPassApp_UserCredits(t *testing.T) {
	db, err := depend.Resolve[*sql.DB]()
	require.NoError(t, err, "failed to resolve database handle")

	userID := uuid.New()
	_, err = db.ExecContext(t.Context(),
		`INSERT INTO users (id, name, email, phone, credits) VALUES ($1, $2, $3, $4, $5)`,
		userID, "Integration User", userID.String()+"@example.test", "+351900000042", 42,
	)
	require.NoError(t, err, "failed to seed user")

	var resp api.UserCreditsResp
	getJSON(t, "/users/"+userID.String()+"/credits", http.StatusOK, &resp)
	require.Equal(t, userID, resp.UserID)
	require.Equal(t, 42, resp.Credits)
}

func TestFestPassApp_AgentToolsAPI(t *testing.T) {
	var tools api.ToolListResp
	t.Run("list-agent-tools", func(t *testing.T) {
		getJSON(t, "/agent/tools", http.StatusOK, &tools)
		require.NotEmpty(t, tools.Tools, "expected agent tools derived from the API description")

		names := make(map[string]bool, len(tools.Tools))
		for _, tool := range tools.Tools {
			names[tool.Name] = true
		}
		require.True(t, names["list_events"], "expected the list_events tool to be exposed")
	})

	t.Run("execute-list-events-tool", func(t *testing.T) {
		var resp api.ExecuteToolResp
		postJSON(t, "/agent/tools/execute", api.ExecuteToolRequest{
			Name:      "list_events",
			Arguments: map[string]any{"page": 1},
		}, http.StatusOK, &resp)
		require.True(t, resp.Success, "expected tool execution to succeed: %s", resp.Error)
		require.NotNil(t, resp.Data, "expected tool execution to return data")
	})

	t.Run("execute-unknown-tool", func(t *testing.T) {
		var resp api.ErrorResp
		postJSON(t, "/agent/tools/execute", api.ExecuteToolRequest{
			Name: "no_such_tool",
		}, http.StatusNotFound, &resp)
		require.Equal(t, api.NOTFOUND, resp.Error.Code)
	})
}

func TestFestPassApp_ConversationAPI(t *testing.T) {
	var resp api.ConversationListResp
	getJSON(t, "/conversations", http.StatusOK, &resp)
	require.Equal(t, 1, resp.Page, "expected first page")
	require.Empty(t, resp.Conversations, "expected no conversations before any chat turn")
}
