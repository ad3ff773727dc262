package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/festpass/festpass/internal/domain"
)

func TestGetEventDigestImpl_Query(t *testing.T) {
	digest := domain.EventDigest{
		ID:          uuid.New(),
		Content:     "# This week\n- Jazz Night at Blue Hall",
		Model:       "festpass-model",
		PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		setExpectations func(repo *domain.MockEventDigestRepository)
		expectedDigest  domain.EventDigest
		expectedErr     error
	}{
		"success": {
			setExpectations: func(repo *domain.MockEventDigestRepository) {
				repo.EXPECT().
					GetLatestEventDigest(mock.Anything).
					Return(digest, true, nil)
			},
			expectedDigest: digest,
		},
		"no-digest-generated": {
			setExpectations: func(repo *domain.MockEventDigestRepository) {
				repo.EXPECT().
					GetLatestEventDigest(mock.Anything).
					Return(domain.EventDigest{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("event digest not found"),
		},
		"repository-error": {
			setExpectations: func(repo *domain.MockEventDigestRepository) {
				repo.EXPECT().
					GetLatestEventDigest(mock.Anything).
					Return(domain.EventDigest{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockEventDigestRepository(t)
			tt.setExpectations(repo)

			impl := NewGetEventDigestImpl(repo)
			result, err := impl.Query(context.Background())

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedDigest, result)
		})
	}
}
