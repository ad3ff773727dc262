package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/festpass/festpass/internal/domain"
)

func TestEventRepository_GetEvent(t *testing.T) {
	eventID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	startsAt := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect       func(sqlmock.Sqlmock)
		expected     domain.Event
		expectedFind bool
		expectErr    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventFields).
					AddRow(eventID, "Jazz Night", "An evening of jazz", startsAt, "Blue Hall", "Lisbon", "https://cdn.local/jazz.jpg", domain.EventStatus_Published, fixedTime, fixedTime)
				m.ExpectQuery("SELECT id, name, description, starts_at, venue, city, image_url, status, created_at, updated_at FROM events WHERE id = $1 LIMIT 1").
					WithArgs(eventID).
					WillReturnRows(rows)
			},
			expected: domain.Event{
				ID:          eventID,
				Name:        "Jazz Night",
				Description: "An evening of jazz",
				StartsAt:    startsAt,
				Venue:       "Blue Hall",
				City:        "Lisbon",
				ImageURL:    "https://cdn.local/jazz.jpg",
				Status:      domain.EventStatus_Published,
				CreatedAt:   fixedTime,
				UpdatedAt:   fixedTime,
			},
			expectedFind: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, description, starts_at, venue, city, image_url, status, created_at, updated_at FROM events WHERE id = $1 LIMIT 1").
					WithArgs(eventID).
					WillReturnError(sql.ErrNoRows)
			},
			expectedFind: false,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, description, starts_at, venue, city, image_url, status, created_at, updated_at FROM events WHERE id = $1 LIMIT 1").
					WithArgs(eventID).
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

			repo := NewEventRepository(db)
			got, found, gotErr := repo.GetEvent(context.Background(), eventID)
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

func TestEventRepository_ListEvents_Pagination(t *testing.T) {
	startsAt := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	rows := sqlmock.NewRows(eventFields)
	for i := 0; i < 3; i++ {
		rows.AddRow(uuid.New(), "Event", "", startsAt, "Hall", "Lisbon", "", domain.EventStatus_Published, fixedTime, fixedTime)
	}
	mock.ExpectQuery("SELECT id, name, description, starts_at, venue, city, image_url, status, created_at, updated_at FROM events WHERE status = $1 ORDER BY starts_at ASC LIMIT 3 OFFSET 0").
		WithArgs(domain.EventStatus_Published).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, hasMore, gotErr := repo.ListEvents(context.Background(), 1, 2)

	assert.NoError(t, gotErr)
	assert.True(t, hasMore)
	assert.Len(t, events, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListEvents_InvalidPage(t *testing.T) {
	db, _, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	repo := NewEventRepository(db)
	_, _, gotErr := repo.ListEvents(context.Background(), 0, 10)

	var validationErr *domain.ValidationErr
	assert.ErrorAs(t, gotErr, &validationErr)
}

func TestEventRepository_ListUpcomingEvents(t *testing.T) {
	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	startsAt := from.AddDate(0, 0, 3)
	fixedTime := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	rows := sqlmock.NewRows(eventFields).
		AddRow(uuid.New(), "Jazz Night", "", startsAt, "Blue Hall", "Lisbon", "", domain.EventStatus_Published, fixedTime, fixedTime)
	mock.ExpectQuery("SELECT id, name, description, starts_at, venue, city, image_url, status, created_at, updated_at FROM events WHERE status = $1 AND starts_at >= $2 ORDER BY starts_at ASC LIMIT 50").
		WithArgs(domain.EventStatus_Published, from).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, gotErr := repo.ListUpcomingEvents(context.Background(), from, 50)

	assert.NoError(t, gotErr)
	assert.Len(t, events, 1)
	assert.Equal(t, "Jazz Night", events[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
