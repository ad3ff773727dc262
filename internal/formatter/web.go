package formatter

import (
	"fmt"

	"github.com/festpass/festpass/internal/domain"
)

const (
	// DEFAULT_PAGE_SIZE is the page window of web list responses.
	DEFAULT_PAGE_SIZE = 5
	// MAX_SUGGESTIONS caps the follow-up suggestions attached to a web response.
	MAX_SUGGESTIONS = 3
)

// buildWebData assembles the structured payload of a web response: the first
// page of items, the pagination window, and follow-up suggestions.
func buildWebData(respType domain.ResponseType, items []map[string]any, rawData []any) *domain.ResponseData {
	data := &domain.ResponseData{
		Type:    respType,
		RawData: rawData,
	}

	paged := items
	if respType == domain.ResponseType_EventList || respType == domain.ResponseType_TicketPricing {
		data.Pagination = paginate(len(items), DEFAULT_PAGE_SIZE)
		if len(paged) > DEFAULT_PAGE_SIZE {
			paged = paged[:DEFAULT_PAGE_SIZE]
		}
	}
	data.Items = paged
	data.Suggestions = buildSuggestions(respType, items)
	return data
}

// paginate computes the page window for the first page of a list.
func paginate(total, pageSize int) *domain.PaginationInfo {
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return &domain.PaginationInfo{
		Current:  1,
		Total:    pages,
		PageSize: pageSize,
		HasMore:  total > pageSize,
	}
}

// buildSuggestions proposes follow-up queries, leading with a contextual one
// when a first item exists.
func buildSuggestions(respType domain.ResponseType, items []map[string]any) []string {
	suggestions := make([]string, 0, MAX_SUGGESTIONS)

	if len(items) > 0 {
		if name, ok := items[0]["name"].(string); ok && name != "" {
			switch respType {
			case domain.ResponseType_EventList:
				suggestions = append(suggestions, fmt.Sprintf("See details of %s", name))
			case domain.ResponseType_EventDetail:
				suggestions = append(suggestions, fmt.Sprintf("Check ticket prices for %s", name))
			}
		}
	}

	for _, generic := range genericSuggestions(respType) {
		if len(suggestions) == MAX_SUGGESTIONS {
			break
		}
		suggestions = append(suggestions, generic)
	}
	return suggestions
}

func genericSuggestions(respType domain.ResponseType) []string {
	switch respType {
	case domain.ResponseType_EventList:
		return []string{"Show events in my city", "Check ticket prices"}
	case domain.ResponseType_EventDetail:
		return []string{"Show upcoming events", "How many credits do I have?"}
	case domain.ResponseType_TicketPricing:
		return []string{"Show upcoming events", "See other events"}
	default:
		return []string{"Show upcoming events"}
	}
}
