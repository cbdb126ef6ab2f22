package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/tastebuddies/frontend/internal/adapters/cache"
	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/clients/messapi"
)

// failingBackend answers path with statusCode and an envelope carrying body,
// and serves a ready mess profile everywhere else.
func failingBackend(t *testing.T, path string, statusCode int, body string) *messapi.HTTPClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == path {
			w.WriteHeader(statusCode)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": body})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"response": map[string]any{"name": "Annapurna"},
		})
	}))
	t.Cleanup(server.Close)
	return messapi.NewClient(server.URL, "accessToken", time.Second, nil)
}

func newBackedMessService(api *messapi.HTTPClient) *services.MessService {
	return services.NewMessService(api, cache.NewReviewDraftStore(cache.NewMemoryAdapter(0, time.Hour), time.Hour, nil))
}

func TestMessLoad_ServerErrorIsReportedByStatus(t *testing.T) {
	api := failingBackend(t, "/api/ratings/fetch-ratings", http.StatusInternalServerError, "database exploded")

	detail, err := newBackedMessService(api).Load(context.Background(), sess, "m-1")

	require.NoError(t, err)
	assert.Equal(t, entities.LoadStatusError, detail.Status)
	assert.Equal(t, "Failed to load data. Error: Request failed with status code 500", detail.Error)
}

func TestMessLoad_ProfileServerError(t *testing.T) {
	api := failingBackend(t, "/api/user/fetching-user-details", http.StatusBadGateway, "")

	detail, err := newBackedMessService(api).Load(context.Background(), sess, "m-1")

	require.NoError(t, err)
	assert.Equal(t, "Failed to load data. Error: Request failed with status code 502", detail.Error)
}

func TestProfileLoad_ServerErrorIsReportedByStatus(t *testing.T) {
	api := failingBackend(t, "/api/user/fetching-user-details", http.StatusInternalServerError, "database exploded")

	detail, err := services.NewProfileService(api).Load(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, entities.LoadStatusError, detail.Status)
	assert.Equal(t, "Failed to load user data. Error: Request failed with status code 500", detail.Error)
}

func TestSearch_ServerErrorShowsGenericToast(t *testing.T) {
	api := failingBackend(t, "/api/mess/fetching-messes-locations", http.StatusInternalServerError, "database exploded")

	outcome, err := services.NewHeaderService(api).SubmitSearch(context.Background(), sess, "annapurna")

	require.NoError(t, err)
	require.NotNil(t, outcome.Toast)
	assert.Empty(t, outcome.MessID)
	assert.Equal(t, "Search failed. Please try again.", outcome.Toast.Title)
}

func TestSubscription_BackendStatuses(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       entities.Toast
	}{
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       "database exploded",
			want:       entities.Toast{Kind: entities.ToastError, Title: "Subscription Failed", Description: "Request failed with status code 500"},
		},
		{
			name:       "conflict",
			statusCode: http.StatusConflict,
			body:       "Already subscribed",
			want:       entities.Toast{Kind: entities.ToastWarning, Title: "Already Subscribed", Description: "You are already subscribed to this meal plan."},
		},
		{
			name:       "already subscribed under another status",
			statusCode: http.StatusBadRequest,
			body:       "Already subscribed",
			want:       entities.Toast{Kind: entities.ToastWarning, Title: "Already Subscribed", Description: "You are already subscribed to this meal plan."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := failingBackend(t, "/api/subscriptions/create-subscription", tt.statusCode, tt.body)

			toast, err := newBackedMessService(api).CreateSubscription(context.Background(), sess, "m-1", "Lunch", "Monthly", "k-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, toast)
		})
	}
}
