package usecases

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

	"github.com/festpass/festpass/internal/domain"
)

func TestRelayOutboxImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	messageID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		setExpectations func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher)
		expectedErr     error
	}{
		"success-relay-and-delete": {
			setExpectations: func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher) {
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				oe := domain.OutboxEvent{
					ID:         eventID,
					EntityType: domain.OutboxEntityType_ChatMessage,
					EntityID:   messageID,
					Topic:      domain.OutboxTopic_ChatMessages,
					EventType:  domain.EventType_CHAT_MESSAGE_SENT,
					CreatedAt:  fixedTime,
					RetryCount: 0,
					MaxRetries: 3,
				}

				outbox.EXPECT().FetchPendingEvents(
					mock.Anything,
					100,
				).Return([]domain.OutboxEvent{oe}, nil)

				publisher.EXPECT().PublishEvent(
					mock.Anything,
					oe,
				).Return(nil)

				outbox.EXPECT().DeleteEvent(
					mock.Anything,
					eventID,
				).Return(nil)
			},
			expectedErr: nil,
		},
		"success-relay-multiple-events": {
			setExpectations: func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher) {
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				eventID2 := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
				segmentID := uuid.MustParse("423e4567-e89b-12d3-a456-426614174000")

				events := []domain.OutboxEvent{
					{
						ID:         eventID,
						EntityType: domain.OutboxEntityType_ChatMessage,
						EntityID:   messageID,
						Topic:      domain.OutboxTopic_ChatMessages,
						EventType:  domain.EventType_CHAT_MESSAGE_SENT,
						CreatedAt:  fixedTime,
						RetryCount: 0,
						MaxRetries: 3,
					},
					{
						ID:         eventID2,
						EntityType: domain.OutboxEntityType_Segment,
						EntityID:   segmentID,
						Topic:      domain.OutboxTopic_OutboundSegments,
						EventType:  domain.EventType_SEGMENT_QUEUED,
						CreatedAt:  fixedTime,
						RetryCount: 0,
						MaxRetries: 3,
					},
				}

				outbox.EXPECT().FetchPendingEvents(
					mock.Anything,
					100,
				).Return(events, nil)

				for _, event := range events {
					publisher.EXPECT().PublishEvent(
						mock.Anything,
						event,
					).Return(nil)

					outbox.EXPECT().DeleteEvent(
						mock.Anything,
						event.ID,
					).Return(nil)
				}
			},
			expectedErr: nil,
		},
		"publish-error-retry": {
			setExpectations: func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher) {
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().FetchPendingEvents(
					mock.Anything,
					100,
				).Return([]domain.OutboxEvent{
					{
						ID:         eventID,
						EntityType: domain.OutboxEntityType_ChatMessage,
						EntityID:   messageID,
						Topic:      domain.OutboxTopic_ChatMessages,
						EventType:  domain.EventType_CHAT_MESSAGE_SENT,
						CreatedAt:  fixedTime,
						RetryCount: 0,
						MaxRetries: 3,
					},
				}, nil)

				publisher.EXPECT().PublishEvent(
					mock.Anything,
					mock.Anything,
				).Return(errors.New("publish error"))

				outbox.EXPECT().UpdateEvent(
					mock.Anything,
					eventID,
					domain.OutboxStatus_Pending,
					1,
					"publish error",
				).Return(nil)
			},
			expectedErr: nil,
		},
		"publish-error-max-retries-exceeded": {
			setExpectations: func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher) {
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().FetchPendingEvents(
					mock.Anything,
					100,
				).Return([]domain.OutboxEvent{
					{
						ID:         eventID,
						EntityType: domain.OutboxEntityType_ChatMessage,
						EntityID:   messageID,
						Topic:      domain.OutboxTopic_ChatMessages,
						EventType:  domain.EventType_CHAT_MESSAGE_SENT,
						CreatedAt:  fixedTime,
						RetryCount: 2,
						MaxRetries: 3,
					},
				}, nil)

				publisher.EXPECT().PublishEvent(
					mock.Anything,
					mock.Anything,
				).Return(errors.New("publish error"))

				outbox.EXPECT().UpdateEvent(
					mock.Anything,
					eventID,
					domain.OutboxStatus_Failed,
					3,
					"publish error",
				).Return(nil)
			},
			expectedErr: nil,
		},
		"fetch-pending-events-error": {
			setExpectations: func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher) {
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().FetchPendingEvents(
					mock.Anything,
					100,
				).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"empty-batch": {
			setExpectations: func(t *testing.T, uow *domain.MockUnitOfWork, publisher *domain.MockEventPublisher) {
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().FetchPendingEvents(
					mock.Anything,
					100,
				).Return([]domain.OutboxEvent{}, nil)
			},
			expectedErr: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			publisher := domain.NewMockEventPublisher(t)

			if tt.setExpectations != nil {
				tt.setExpectations(t, uow, publisher)
			}

			relay := NewRelayOutboxImpl(uow, publisher, log.New(io.Discard, "", 0))
			gotErr := relay.Execute(context.Background())

			assert.Equal(t, tt.expectedErr, gotErr)
		})
	}
}
