package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/festpass/festpass/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		toolsUsed []domain.ToolUsage
		want      domain.ResponseType
	}{
		"NoToolsIsGeneric": {
			toolsUsed: nil,
			want:      domain.ResponseType_Generic,
		},
		"ListEvents": {
			toolsUsed: []domain.ToolUsage{{Name: "list_events"}},
			want:      domain.ResponseType_EventList,
		},
		"SearchEvents": {
			toolsUsed: []domain.ToolUsage{{Name: "search_events"}},
			want:      domain.ResponseType_EventList,
		},
		"GetEvent": {
			toolsUsed: []domain.ToolUsage{{Name: "get_event"}},
			want:      domain.ResponseType_EventDetail,
		},
		"TicketCategories": {
			toolsUsed: []domain.ToolUsage{{Name: "list_ticket_categories"}},
			want:      domain.ResponseType_TicketPricing,
		},
		"PricingBeatsEvent": {
			toolsUsed: []domain.ToolUsage{{Name: "get_event_pricing"}},
			want:      domain.ResponseType_TicketPricing,
		},
		"LastToolWins": {
			toolsUsed: []domain.ToolUsage{{Name: "list_events"}, {Name: "get_event"}},
			want:      domain.ResponseType_EventDetail,
		},
		"UnknownToolIsGeneric": {
			toolsUsed: []domain.ToolUsage{{Name: "send_feedback"}},
			want:      domain.ResponseType_Generic,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.toolsUsed))
		})
	}
}
