package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/festpass/festpass/internal/domain"
)

func TestConversationRepository_CreateConversation(t *testing.T) {
	fixedID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		title     string
		channel   domain.ResponseChannel
		expect    func(sqlmock.Sqlmock)
		expected  domain.Conversation
		expectErr bool
	}{
		"success": {
			title:   "What events are on this weekend?",
			channel: domain.ResponseChannel_Web,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(conversationFields).
					AddRow(fixedID, nil, domain.ResponseChannel_Web, "What events are on this weekend?", domain.ConversationTitleSource_Auto, nil, fixedTime, fixedTime)
				m.ExpectQuery("INSERT INTO conversations (id,user_id,channel,title,title_source,last_message_at,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, user_id, channel, title, title_source, last_message_at, created_at, updated_at").
					WithArgs(sqlmock.AnyArg(), nil, domain.ResponseChannel_Web, "What events are on this weekend?", domain.ConversationTitleSource_Auto, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			expected: domain.Conversation{
				ID:          fixedID,
				Channel:     domain.ResponseChannel_Web,
				Title:       "What events are on this weekend?",
				TitleSource: domain.ConversationTitleSource_Auto,
				CreatedAt:   fixedTime,
				UpdatedAt:   fixedTime,
			},
			expectErr: false,
		},
		"validation-error-empty-title": {
			title:     "",
			channel:   domain.ResponseChannel_Web,
			expect:    func(sqlmock.Sqlmock) {},
			expectErr: true,
		},
		"database-error": {
			title:   "What events are on this weekend?",
			channel: domain.ResponseChannel_Messaging,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO conversations (id,user_id,channel,title,title_source,last_message_at,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, user_id, channel, title, title_source, last_message_at, created_at, updated_at").
					WithArgs(sqlmock.AnyArg(), nil, domain.ResponseChannel_Messaging, "What events are on this weekend?", domain.ConversationTitleSource_Auto, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewConversationRepository(db)
			got, gotErr := repo.CreateConversation(context.Background(), tt.title, tt.channel)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expected, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversationRepository_GetConversation(t *testing.T) {
	conversationID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	lastMessageAt := time.Date(2026, 8, 16, 13, 0, 0, 0, time.UTC)
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect       func(sqlmock.Sqlmock)
		expected     domain.Conversation
		expectedFind bool
		expectErr    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(conversationFields).
					AddRow(conversationID, nil, domain.ResponseChannel_Web, "Weekend plans", domain.ConversationTitleSource_User, lastMessageAt, fixedTime, fixedTime)
				m.ExpectQuery("SELECT id, user_id, channel, title, title_source, last_message_at, created_at, updated_at FROM conversations WHERE id = $1 LIMIT 1").
					WithArgs(conversationID).
					WillReturnRows(rows)
			},
			expected: domain.Conversation{
				ID:            conversationID,
				Channel:       domain.ResponseChannel_Web,
				Title:         "Weekend plans",
				TitleSource:   domain.ConversationTitleSource_User,
				LastMessageAt: &lastMessageAt,
				CreatedAt:     fixedTime,
				UpdatedAt:     fixedTime,
			},
			expectedFind: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, user_id, channel, title, title_source, last_message_at, created_at, updated_at FROM conversations WHERE id = $1 LIMIT 1").
					WithArgs(conversationID).
					WillReturnError(sql.ErrNoRows)
			},
			expectedFind: false,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, user_id, channel, title, title_source, last_message_at, created_at, updated_at FROM conversations WHERE id = $1 LIMIT 1").
					WithArgs(conversationID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewConversationRepository(db)
			got, found, gotErr := repo.GetConversation(context.Background(), conversationID)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFind, found)
				if found {
					assert.Equal(t, tt.expected, got)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversationRepository_ListConversations_Pagination(t *testing.T) {
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	// Three rows returned for page size two means there is a next page
	rows := sqlmock.NewRows(conversationFields)
	for i := 0; i < 3; i++ {
		rows.AddRow(uuid.New(), nil, domain.ResponseChannel_Web, "Chat", domain.ConversationTitleSource_Auto, nil, fixedTime, fixedTime)
	}
	mock.ExpectQuery("SELECT id, user_id, channel, title, title_source, last_message_at, created_at, updated_at FROM conversations ORDER BY last_message_at DESC NULLS LAST, updated_at DESC, created_at DESC LIMIT 3 OFFSET 0").
		WillReturnRows(rows)

	repo := NewConversationRepository(db)
	conversations, hasMore, gotErr := repo.ListConversations(context.Background(), 1, 2)

	assert.NoError(t, gotErr)
	assert.True(t, hasMore)
	assert.Len(t, conversations, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitConversationRepository_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	init := InitConversationRepository{DB: db}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	repo, err := depend.Resolve[domain.ConversationRepository]()
	assert.NoError(t, err)
	assert.NotNil(t, repo)
}
