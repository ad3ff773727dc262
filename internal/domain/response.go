package domain

import "context"

// ResponseType classifies what kind of payload a chat answer carries. The set
// is closed; anything unrecognized is Generic.
type ResponseType string

const (
	ResponseType_EventList     ResponseType = "event_list"
	ResponseType_EventDetail   ResponseType = "event_detail"
	ResponseType_TicketPricing ResponseType = "ticket_pricing"
	ResponseType_Generic       ResponseType = "generic"
)

// MediaItem is a media attachment rendered on the messaging channel.
type MediaItem struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// PaginationInfo describes the page window of a web list response.
type PaginationInfo struct {
	Current  int  `json:"current"`
	Total    int  `json:"total"`
	PageSize int  `json:"pageSize"`
	HasMore  bool `json:"hasMore"`
}

// ResponseData is the structured portion of a formatted response.
type ResponseData struct {
	Type        ResponseType     `json:"type"`
	Items       []map[string]any `json:"items,omitempty"`
	Pagination  *PaginationInfo  `json:"pagination,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
	RawData     any              `json:"rawData,omitempty"`
}

// FormattedResponse is a channel-adapted rendering of an agent answer.
type FormattedResponse struct {
	Answer string
	Data   *ResponseData
	Media  []MediaItem
}

// ResponseFormatter adapts a raw agent answer for a delivery channel. It never
// fails; formatting problems degrade to a passthrough of the original answer.
type ResponseFormatter interface {
	Format(ctx context.Context, answer string, toolsUsed []ToolUsage, rawData []any, channel ResponseChannel) FormattedResponse
}
