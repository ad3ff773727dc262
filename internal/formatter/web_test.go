package formatter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festpass/festpass/internal/domain"
)

func buildItems(n int) []map[string]any {
	items := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]any{
			"id":   fmt.Sprintf("e%d", i),
			"name": fmt.Sprintf("Event %d", i),
		})
	}
	return items
}

func TestBuildWebData_Pagination(t *testing.T) {
	tests := map[string]struct {
		itemCount    int
		wantCurrent  int
		wantTotal    int
		wantPageSize int
		wantHasMore  bool
		wantItems    int
	}{
		"SevenItems": {
			itemCount:    7,
			wantCurrent:  1,
			wantTotal:    2,
			wantPageSize: 5,
			wantHasMore:  true,
			wantItems:    5,
		},
		"ExactPage": {
			itemCount:    5,
			wantCurrent:  1,
			wantTotal:    1,
			wantPageSize: 5,
			wantHasMore:  false,
			wantItems:    5,
		},
		"Empty": {
			itemCount:    0,
			wantCurrent:  1,
			wantTotal:    0,
			wantPageSize: 5,
			wantHasMore:  false,
			wantItems:    0,
		},
		"SingleItem": {
			itemCount:    1,
			wantCurrent:  1,
			wantTotal:    1,
			wantPageSize: 5,
			wantHasMore:  false,
			wantItems:    1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			data := buildWebData(domain.ResponseType_EventList, buildItems(tt.itemCount), nil)

			require.NotNil(t, data.Pagination)
			assert.Equal(t, tt.wantCurrent, data.Pagination.Current)
			assert.Equal(t, tt.wantTotal, data.Pagination.Total)
			assert.Equal(t, tt.wantPageSize, data.Pagination.PageSize)
			assert.Equal(t, tt.wantHasMore, data.Pagination.HasMore)
			assert.Len(t, data.Items, tt.wantItems)
		})
	}
}

func TestBuildWebData_DetailHasNoPagination(t *testing.T) {
	data := buildWebData(domain.ResponseType_EventDetail, buildItems(1), nil)

	assert.Nil(t, data.Pagination)
	assert.Len(t, data.Items, 1)
}

func TestBuildSuggestions(t *testing.T) {
	tests := map[string]struct {
		respType domain.ResponseType
		items    []map[string]any
		wantLead string
	}{
		"EventListLeadsWithDetails": {
			respType: domain.ResponseType_EventList,
			items:    []map[string]any{{"name": "Jazz Night"}},
			wantLead: "See details of Jazz Night",
		},
		"EventDetailLeadsWithPricing": {
			respType: domain.ResponseType_EventDetail,
			items:    []map[string]any{{"name": "Jazz Night"}},
			wantLead: "Check ticket prices for Jazz Night",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			suggestions := buildSuggestions(tt.respType, tt.items)

			require.NotEmpty(t, suggestions)
			assert.Equal(t, tt.wantLead, suggestions[0])
			assert.LessOrEqual(t, len(suggestions), MAX_SUGGESTIONS)
		})
	}
}

func TestBuildSuggestions_NoItemsNoLead(t *testing.T) {
	suggestions := buildSuggestions(domain.ResponseType_EventList, nil)

	assert.LessOrEqual(t, len(suggestions), MAX_SUGGESTIONS)
	for _, s := range suggestions {
		assert.NotContains(t, s, "See details of")
	}
}
