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

func TestGetEventImpl_Query(t *testing.T) {
	eventID := uuid.New()
	event := domain.Event{ID: eventID, Name: "Jazz Night", Status: domain.EventStatus_Published}
	categories := []domain.TicketCategory{
		{ID: uuid.New(), EventID: eventID, Name: "General", Price: 30, Currency: "EUR", Available: 100},
	}

	t.Run("success", func(t *testing.T) {
		eventRepo := domain.NewMockEventRepository(t)
		ticketRepo := domain.NewMockTicketCategoryRepository(t)

		eventRepo.EXPECT().GetEvent(mock.Anything, eventID).Return(event, true, nil)
		ticketRepo.EXPECT().FindByEventID(mock.Anything, eventID).Return(categories, nil)

		impl := NewGetEventImpl(eventRepo, ticketRepo)
		result, err := impl.Query(context.Background(), eventID)

		require.NoError(t, err)
		assert.Equal(t, event, result.Event)
		assert.Equal(t, categories, result.TicketCategories)
	})

	t.Run("not-found", func(t *testing.T) {
		eventRepo := domain.NewMockEventRepository(t)
		ticketRepo := domain.NewMockTicketCategoryRepository(t)

		eventRepo.EXPECT().GetEvent(mock.Anything, eventID).Return(domain.Event{}, false, nil)

		impl := NewGetEventImpl(eventRepo, ticketRepo)
		_, err := impl.Query(context.Background(), eventID)

		require.Error(t, err)
		var notFoundErr *domain.NotFoundErr
		assert.ErrorAs(t, err, &notFoundErr)
	})
}
