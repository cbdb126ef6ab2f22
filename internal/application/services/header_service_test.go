package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers/mocks"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

func TestHeaderService_SubmitSearch_EmptyTermNeverCalls(t *testing.T) {
	for _, term := range []string{"", "   "} {
		api := mocks.NewMessAPI(t)

		outcome, err := services.NewHeaderService(api).SubmitSearch(context.Background(), sess, term)
		require.NoError(t, err)
		assert.Empty(t, outcome.MessID)
		require.NotNil(t, outcome.Toast)
		assert.Equal(t, "Please enter a search term.", outcome.Toast.Title)
		api.AssertNotCalled(t, "SearchMesses", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestHeaderService_SubmitSearch(t *testing.T) {
	tests := []struct {
		name      string
		messes    []entities.MessSearchResult
		err       error
		wantMess  string
		wantToast string
	}{
		{
			name:     "first match wins",
			messes:   []entities.MessSearchResult{{ID: "a1", Name: "Annapurna"}, {ID: "b2"}},
			wantMess: "a1",
		},
		{
			name:      "no matches",
			messes:    []entities.MessSearchResult{},
			wantToast: "No mess found with the provided name.",
		},
		{
			name:      "backend rejected",
			err:       rejected("Search index offline"),
			wantToast: "Error: Search index offline",
		},
		{
			name:      "transport failure",
			err:       unavailable("dial tcp: refused"),
			wantToast: "Search failed. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMessAPI(t)
			api.On("SearchMesses", mock.Anything, sess, "annapurna").Return(tt.messes, tt.err).Once()

			outcome, err := services.NewHeaderService(api).SubmitSearch(context.Background(), sess, " annapurna ")
			require.NoError(t, err)
			assert.Equal(t, tt.wantMess, outcome.MessID)
			if tt.wantToast == "" {
				assert.Nil(t, outcome.Toast)
				return
			}
			require.NotNil(t, outcome.Toast)
			assert.Equal(t, tt.wantToast, outcome.Toast.Title)
		})
	}
}

func TestHeaderService_SubmitSearch_Canceled(t *testing.T) {
	api := mocks.NewMessAPI(t)
	api.On("SearchMesses", mock.Anything, sess, "x").Return(nil, canceled()).Once()

	_, err := services.NewHeaderService(api).SubmitSearch(context.Background(), sess, "x")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeCanceled))
}

func TestHeaderService_Logout_SwallowsFailures(t *testing.T) {
	api := mocks.NewMessAPI(t)
	api.On("Logout", mock.Anything, sess).Return(errors.New("boom")).Once()

	assert.NotPanics(t, func() {
		services.NewHeaderService(api).Logout(context.Background(), sess)
	})
}
