package formatter

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/festpass/festpass/internal/domain"
)

func newTestPipeline(t *testing.T) (*Pipeline, *domain.MockEventRepository, *domain.MockTicketCategoryRepository) {
	events := domain.NewMockEventRepository(t)
	tickets := domain.NewMockTicketCategoryRepository(t)
	pipeline := NewPipeline(events, tickets, log.New(io.Discard, "", 0))
	return pipeline, events, tickets
}

func TestPipeline_Format_WebEventList(t *testing.T) {
	pipeline, events, _ := newTestPipeline(t)

	eventID := uuid.New()
	events.EXPECT().GetEvent(mock.Anything, eventID).
		Return(domain.Event{
			ID:       eventID,
			Name:     "Jazz Night",
			StartsAt: time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
			Venue:    "Blue Hall",
			City:     "Lisbon",
			Status:   domain.EventStatus_Published,
		}, true, nil).
		Once()

	rawData := []any{
		map[string]any{"events": []any{
			map[string]any{"id": eventID.String(), "name": "stale name"},
		}},
	}

	resp := pipeline.Format(context.Background(), "Found one event.", []domain.ToolUsage{{Name: "list_events"}}, rawData, domain.ResponseChannel_Web)

	assert.Equal(t, "Found one event.", resp.Answer)
	require.NotNil(t, resp.Data)
	assert.Equal(t, domain.ResponseType_EventList, resp.Data.Type)
	require.Len(t, resp.Data.Items, 1)
	// Enrichment replaced the stale tool payload with catalog data.
	assert.Equal(t, "Jazz Night", resp.Data.Items[0]["name"])
	require.NotNil(t, resp.Data.Pagination)
	assert.Equal(t, 1, resp.Data.Pagination.Total)
}

func TestPipeline_Format_EnrichmentFailureKeepsRawItem(t *testing.T) {
	pipeline, events, _ := newTestPipeline(t)

	brokenID := uuid.New()
	goodID := uuid.New()
	events.EXPECT().GetEvent(mock.Anything, brokenID).
		Return(domain.Event{}, false, errors.New("db down")).
		Once()
	events.EXPECT().GetEvent(mock.Anything, goodID).
		Return(domain.Event{ID: goodID, Name: "Rock Fest", Status: domain.EventStatus_Published}, true, nil).
		Once()

	rawData := []any{[]any{
		map[string]any{"id": brokenID.String(), "name": "raw name"},
		map[string]any{"id": goodID.String(), "name": "stale"},
	}}

	resp := pipeline.Format(context.Background(), "Two events.", []domain.ToolUsage{{Name: "list_events"}}, rawData, domain.ResponseChannel_Web)

	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, "raw name", resp.Data.Items[0]["name"])
	assert.Equal(t, "Rock Fest", resp.Data.Items[1]["name"])
}

func TestPipeline_Format_TicketPricingEnrichment(t *testing.T) {
	pipeline, _, tickets := newTestPipeline(t)

	eventID := uuid.New()
	tickets.EXPECT().FindByEventID(mock.Anything, eventID).
		Return([]domain.TicketCategory{
			{ID: uuid.New(), EventID: eventID, Name: "General", Price: 30, Currency: "EUR", Available: 100},
			{ID: uuid.New(), EventID: eventID, Name: "VIP", Price: 80, Currency: "EUR", Available: 10},
		}, nil).
		Once()

	rawData := []any{[]any{
		map[string]any{"id": uuid.NewString(), "event_id": eventID.String(), "name": "stale"},
	}}

	resp := pipeline.Format(context.Background(), "Prices below.", []domain.ToolUsage{{Name: "list_ticket_categories"}}, rawData, domain.ResponseChannel_Web)

	require.NotNil(t, resp.Data)
	assert.Equal(t, domain.ResponseType_TicketPricing, resp.Data.Type)
	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, "General", resp.Data.Items[0]["name"])
	assert.Equal(t, "VIP", resp.Data.Items[1]["name"])
}

func TestPipeline_Format_MessagingChannel(t *testing.T) {
	pipeline, events, _ := newTestPipeline(t)

	eventID := uuid.New()
	events.EXPECT().GetEvent(mock.Anything, eventID).
		Return(domain.Event{
			ID:       eventID,
			Name:     "Jazz Night",
			ImageURL: "https://cdn.local/jazz.jpg",
			Status:   domain.EventStatus_Published,
		}, true, nil).
		Once()

	rawData := []any{[]any{map[string]any{"id": eventID.String()}}}

	resp := pipeline.Format(context.Background(), "One event found.", []domain.ToolUsage{{Name: "list_events"}}, rawData, domain.ResponseChannel_Messaging)

	require.Len(t, resp.Media, 1)
	assert.Equal(t, "image", resp.Media[0].Type)
	assert.Equal(t, "https://cdn.local/jazz.jpg", resp.Media[0].URL)
	assert.Contains(t, resp.Media[0].Caption, "Jazz Night")
}

func TestPipeline_Format_UnknownChannelIsPassthrough(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	rawData := []any{"whatever"}
	resp := pipeline.Format(context.Background(), "Plain answer.", nil, rawData, domain.ResponseChannel("carrier-pigeon"))

	assert.Equal(t, "Plain answer.", resp.Answer)
	require.NotNil(t, resp.Data)
	assert.Equal(t, domain.ResponseType_Generic, resp.Data.Type)
	assert.Equal(t, rawData, resp.Data.RawData)
	assert.Empty(t, resp.Media)
}

func TestPipeline_Format_GenericWithNoTools(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	resp := pipeline.Format(context.Background(), "Hello!", nil, nil, domain.ResponseChannel_Web)

	assert.Equal(t, "Hello!", resp.Answer)
	require.NotNil(t, resp.Data)
	assert.Equal(t, domain.ResponseType_Generic, resp.Data.Type)
	assert.Nil(t, resp.Data.Pagination)
}
