package formatter

import (
	"strings"

	"github.com/festpass/festpass/internal/domain"
)

// Classify derives the response type from the last tool the agent used. The
// set is closed: names that match no known fragment classify as Generic, and
// so does a turn that used no tools at all.
func Classify(toolsUsed []domain.ToolUsage) domain.ResponseType {
	if len(toolsUsed) == 0 {
		return domain.ResponseType_Generic
	}

	name := strings.ToLower(toolsUsed[len(toolsUsed)-1].Name)
	switch {
	case strings.Contains(name, "ticket") || strings.Contains(name, "pricing") || strings.Contains(name, "price"):
		return domain.ResponseType_TicketPricing
	case strings.Contains(name, "event"):
		if strings.Contains(name, "list") || strings.Contains(name, "search") || strings.Contains(name, "events") {
			return domain.ResponseType_EventList
		}
		return domain.ResponseType_EventDetail
	default:
		return domain.ResponseType_Generic
	}
}
