package formatter

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// Pipeline adapts raw agent answers for a delivery channel. Formatting is
// best-effort: any failure, including a panic in a stage, degrades to a
// generic passthrough of the original answer.
type Pipeline struct {
	events  domain.EventRepository
	tickets domain.TicketCategoryRepository
	logger  *log.Logger
}

// NewPipeline creates a new formatter pipeline.
func NewPipeline(events domain.EventRepository, tickets domain.TicketCategoryRepository, logger *log.Logger) *Pipeline {
	return &Pipeline{
		events:  events,
		tickets: tickets,
		logger:  logger,
	}
}

// Format classifies, extracts, enriches and renders one agent answer for the
// requested channel.
func (p *Pipeline) Format(ctx context.Context, answer string, toolsUsed []domain.ToolUsage, rawData []any, channel domain.ResponseChannel) (resp domain.FormattedResponse) {
	ctx, span := telemetry.Start(ctx)
	defer span.End()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("response formatting panicked: %v", r)
			resp = genericPassthrough(answer, rawData)
		}
		telemetry.RecordErrorAndStatus(span, nil)
	}()

	respType := Classify(toolsUsed)

	var items []map[string]any
	for _, raw := range rawData {
		items = append(items, ExtractItems(raw)...)
	}
	items = DedupeByID(items)
	items = p.enrich(ctx, respType, items)

	switch channel {
	case domain.ResponseChannel_Messaging:
		text, media := buildMessagingResponse(answer, items)
		return domain.FormattedResponse{
			Answer: text,
			Media:  media,
			Data: &domain.ResponseData{
				Type:  respType,
				Items: items,
			},
		}
	case domain.ResponseChannel_Web:
		return domain.FormattedResponse{
			Answer: answer,
			Data:   buildWebData(respType, items, rawData),
		}
	default:
		return genericPassthrough(answer, rawData)
	}
}

// enrich re-fetches the entities behind the items so responses carry current
// catalog data. Enrichment is per-item tolerant: a failed lookup keeps the
// raw item and moves on.
func (p *Pipeline) enrich(ctx context.Context, respType domain.ResponseType, items []map[string]any) []map[string]any {
	switch respType {
	case domain.ResponseType_EventList, domain.ResponseType_EventDetail:
		return p.enrichEvents(ctx, items)
	case domain.ResponseType_TicketPricing:
		return p.enrichTicketCategories(ctx, items)
	default:
		return items
	}
}

func (p *Pipeline) enrichEvents(ctx context.Context, items []map[string]any) []map[string]any {
	enriched := make([]map[string]any, 0, len(items))
	for _, item := range items {
		id, ok := itemUUID(item, "id")
		if !ok {
			enriched = append(enriched, item)
			continue
		}
		event, found, err := p.events.GetEvent(ctx, id)
		if err != nil || !found {
			if err != nil {
				p.logger.Printf("enriching event %s: %v", id, err)
			}
			enriched = append(enriched, item)
			continue
		}
		enriched = append(enriched, eventItem(event))
	}
	return enriched
}

func (p *Pipeline) enrichTicketCategories(ctx context.Context, items []map[string]any) []map[string]any {
	seen := make(map[uuid.UUID]struct{})
	enriched := make([]map[string]any, 0, len(items))
	for _, item := range items {
		eventID, ok := itemUUID(item, "event_id")
		if !ok {
			enriched = append(enriched, item)
			continue
		}
		if _, done := seen[eventID]; done {
			continue
		}
		seen[eventID] = struct{}{}
		categories, err := p.tickets.FindByEventID(ctx, eventID)
		if err != nil || len(categories) == 0 {
			if err != nil {
				p.logger.Printf("enriching ticket categories for event %s: %v", eventID, err)
			}
			enriched = append(enriched, item)
			continue
		}
		for _, category := range categories {
			enriched = append(enriched, ticketCategoryItem(category))
		}
	}
	return enriched
}

func itemUUID(item map[string]any, key string) (uuid.UUID, bool) {
	raw, ok := item[key].(string)
	if !ok {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

func eventItem(event domain.Event) map[string]any {
	return map[string]any{
		"id":          event.ID.String(),
		"name":        event.Name,
		"description": event.Description,
		"starts_at":   event.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
		"venue":       event.Venue,
		"city":        event.City,
		"image_url":   event.ImageURL,
		"status":      string(event.Status),
	}
}

func ticketCategoryItem(category domain.TicketCategory) map[string]any {
	return map[string]any{
		"id":        category.ID.String(),
		"event_id":  category.EventID.String(),
		"name":      category.Name,
		"price":     category.Price,
		"currency":  category.Currency,
		"available": category.Available,
	}
}

func genericPassthrough(answer string, rawData []any) domain.FormattedResponse {
	return domain.FormattedResponse{
		Answer: answer,
		Data: &domain.ResponseData{
			Type:    domain.ResponseType_Generic,
			RawData: rawData,
		},
	}
}

// InitResponseFormatter is responsible for initializing the response formatter dependency.
type InitResponseFormatter struct {
	Events  domain.EventRepository          `resolve:""`
	Tickets domain.TicketCategoryRepository `resolve:""`
	Logger  *log.Logger                     `resolve:""`
}

// Initialize registers the ResponseFormatter in the dependency container.
func (irf InitResponseFormatter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ResponseFormatter](NewPipeline(irf.Events, irf.Tickets, irf.Logger))
	return ctx, nil
}
