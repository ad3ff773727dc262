package http

import (
	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/usecases"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	case *domain.AuthenticationErr:
		errResp.Error.Code = UNAUTHORIZED
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toEvent(e domain.Event) EventResp {
	return EventResp{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		Venue:       e.Venue,
		City:        e.City,
		ImageURL:    e.ImageURL,
	}
}

func toTicketCategory(t domain.TicketCategory) TicketCategoryResp {
	return TicketCategoryResp{
		ID:        t.ID,
		Name:      t.Name,
		Price:     t.Price,
		Currency:  t.Currency,
		Available: t.Available,
	}
}

func toConversation(c domain.Conversation) ConversationResp {
	return ConversationResp{
		ID:            c.ID,
		Channel:       string(c.Channel),
		Title:         c.Title,
		TitleSource:   string(c.TitleSource),
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toMessage(m domain.Message) MessageResp {
	return MessageResp{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func toToolDefinition(def domain.ToolDefinition) ToolDefinitionResp {
	return ToolDefinitionResp{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: def.InputSchema,
	}
}

func toChatResp(result usecases.ChatWithAgentResult) ChatResp {
	resp := ChatResp{
		ConversationID: result.ConversationID,
		Answer:         result.FormattedResponse.Answer,
		ToolsUsed:      []ToolUsageResp{},
		Data:           result.FormattedResponse.Data,
		Media:          result.FormattedResponse.Media,
	}
	for _, usage := range result.ToolsUsed {
		resp.ToolsUsed = append(resp.ToolsUsed, ToolUsageResp{
			Name:      usage.Name,
			Arguments: usage.Arguments,
		})
	}
	return resp
}
