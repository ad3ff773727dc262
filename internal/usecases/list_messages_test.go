package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/festpass/festpass/internal/domain"
)

func TestListMessagesImpl_Query_FiltersToolTraces(t *testing.T) {
	conversationID := uuid.New()
	messageRepo := domain.NewMockMessageRepository(t)

	messageRepo.EXPECT().
		ListMessages(mock.Anything, conversationID, 1, 20).
		Return([]domain.Message{
			{Role: domain.ChatRole_User, Content: "any jazz?"},
			{Role: domain.ChatRole_Tool, Content: "list_events()"},
			{Role: domain.ChatRole_Assistant, Content: "Jazz Night this Friday."},
			{Role: domain.ChatRole_Assistant, Content: ""},
		}, true, nil)

	impl := NewListMessagesImpl(messageRepo)
	messages, hasMore, err := impl.Query(context.Background(), conversationID, 1, 20)

	require.NoError(t, err)
	assert.True(t, hasMore)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.ChatRole_User, messages[0].Role)
	assert.Equal(t, domain.ChatRole_Assistant, messages[1].Role)
}
