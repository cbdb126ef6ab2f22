package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers/mocks"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

func TestProfileService_Load(t *testing.T) {
	api := mocks.NewMessAPI(t)
	profile := &entities.UserProfile{Name: "Asha", Email: "asha@example.com", Type: "user"}
	api.On("FetchOwnProfile", mock.Anything, sess).Return(profile, nil).Once()

	detail, err := services.NewProfileService(api).Load(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, entities.LoadStatusReady, detail.Status)
	assert.Equal(t, profile, detail.Profile)
}

func TestProfileService_Load_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "rejected with message", err: rejected("Not logged in"), want: "Not logged in"},
		{name: "rejected without message", err: rejected(""), want: "Failed to load user data."},
		{name: "transport", err: unavailable("EOF"), want: "Failed to load user data. Error: EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMessAPI(t)
			api.On("FetchOwnProfile", mock.Anything, sess).Return(nil, tt.err).Once()

			detail, err := services.NewProfileService(api).Load(context.Background(), sess)
			require.NoError(t, err)
			assert.Equal(t, entities.LoadStatusError, detail.Status)
			assert.Equal(t, tt.want, detail.Error)
		})
	}
}

func TestProfileService_Load_Canceled(t *testing.T) {
	api := mocks.NewMessAPI(t)
	api.On("FetchOwnProfile", mock.Anything, sess).Return(nil, canceled()).Once()

	detail, err := services.NewProfileService(api).Load(context.Background(), sess)
	assert.Nil(t, detail)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeCanceled))
}
