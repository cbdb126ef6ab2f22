package messapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

var testSession = entities.Session{Token: "tok-123", VisitorID: "v-1"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", "accessToken", 2*time.Second, nil)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestFetchMessProfile_SendsSessionCookieAndQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, userDetailsPath, r.URL.Path)
		assert.Equal(t, "m-42", r.URL.Query().Get("messid"))
		cookie, err := r.Cookie("accessToken")
		if assert.NoError(t, err) {
			assert.Equal(t, "tok-123", cookie.Value)
		}
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"success":true,"response":{"name":"Annapurna","description":"Home food","address":"12 Lane","contactNo":"98765"}}`)
	})

	profile, err := client.FetchMessProfile(context.Background(), testSession, "m-42")
	require.NoError(t, err)
	assert.Equal(t, &entities.UserProfile{Name: "Annapurna", Description: "Home food", Address: "12 Lane", ContactNo: "98765"}, profile)
}

func TestFetchOwnProfile_AnonymousSendsNoCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, err := r.Cookie("accessToken")
		assert.ErrorIs(t, err, http.ErrNoCookie)
		writeJSON(w, http.StatusOK, `{"success":false,"message":"Not logged in"}`)
	})

	_, err := client.FetchOwnProfile(context.Background(), entities.Session{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, providers.ErrRejected))
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
	assert.Equal(t, "Not logged in", apperrors.MessageOf(err))
}

func TestFetchRatings(t *testing.T) {
	t.Run("first summary", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "m-1", r.URL.Query().Get("messId"))
			writeJSON(w, http.StatusOK, `{"success":true,"messRatings":[{"avgCleanliness":4.2,"avgFoodQuality":3.8,"avgOwnerBehaviour":4.5,"avgDeliveryPunctuality":3.9,"avgVariety":4.0,"overallAverage":4.08}]}`)
		})

		summary, err := client.FetchRatings(context.Background(), testSession, "m-1")
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, 4.08, summary.OverallAverage)
		assert.Equal(t, 3.8, summary.AvgFoodQuality)
	})

	t.Run("no ratings yet", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"success":true,"messRatings":[]}`)
		})

		summary, err := client.FetchRatings(context.Background(), testSession, "m-1")
		require.NoError(t, err)
		assert.Nil(t, summary)
	})

	t.Run("empty id never calls", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("backend must not be called")
		})

		_, err := client.FetchRatings(context.Background(), testSession, " ")
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}

func TestCreateSubscription_PostsBodyAndIdempotencyKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, createSubscriptionPath, r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "m-1", body["messId"])
		assert.Equal(t, "Lunch", body["mealType"])
		assert.Equal(t, float64(2592000000), body["durationInMilliseconds"])
		writeJSON(w, http.StatusCreated, `{"success":true,"message":"Subscribed"}`)
	})

	msg, err := client.CreateSubscription(context.Background(), testSession, entities.SubscriptionRequest{
		MessID:                 "m-1",
		MealType:               entities.MealTypeLunch,
		DurationInMilliseconds: entities.MonthlyMilliseconds,
	}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "Subscribed", msg)
}

func TestCreateSubscription_AlreadySubscribedIsConflict(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "success false", status: http.StatusOK, body: `{"success":false,"message":"Already subscribed"}`},
		{name: "conflict status", status: http.StatusConflict, body: `{"success":false,"message":"Already subscribed"}`},
		{name: "conflict without body", status: http.StatusConflict, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.CreateSubscription(context.Background(), testSession, entities.SubscriptionRequest{MessID: "m-1"}, "")
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(err))
			assert.ErrorIs(t, err, providers.ErrRejected)
		})
	}
}

func TestDoJSON_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		want    apperrors.ErrorType
		message string
	}{
		{http.StatusUnauthorized, `{"success":false,"message":"Login first"}`, apperrors.ErrorTypeUnauthorized, "Request failed with status code 401"},
		{http.StatusNotFound, `not json`, apperrors.ErrorTypeNotFound, "Request failed with status code 404"},
		{http.StatusBadRequest, `{"success":false}`, apperrors.ErrorTypeValidation, "Request failed with status code 400"},
		{http.StatusInternalServerError, `{"success":false,"message":"db down"}`, apperrors.ErrorTypeExternal, "Request failed with status code 500"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.SubmitReview(context.Background(), testSession, entities.NewReviewSubmission("m-1", entities.ReviewDraft{}), "")
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.TypeOf(err))
			assert.Equal(t, tt.message, apperrors.MessageOf(err))
			assert.ErrorIs(t, err, providers.ErrUnavailable)
			assert.NotErrorIs(t, err, providers.ErrRejected)
		})
	}
}

func TestSubmitReview_PostsAllDimensions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, reviewMessPath, r.URL.Path)
		assert.Equal(t, "m-7", r.URL.Query().Get("messId"))

		var body entities.ReviewSubmission
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, entities.NewReviewSubmission("m-7", entities.ReviewDraft{
			Cleanliness: 5, FoodQuality: 4, OwnerBehaviour: 3, DeliveryPunctuality: 2, Variety: 1, Review: "Good dal",
		}), body)
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Review added"}`)
	})

	msg, err := client.SubmitReview(context.Background(), testSession, entities.NewReviewSubmission("m-7", entities.ReviewDraft{
		Cleanliness: 5, FoodQuality: 4, OwnerBehaviour: 3, DeliveryPunctuality: 2, Variety: 1, Review: "Good dal",
	}), "")
	require.NoError(t, err)
	assert.Equal(t, "Review added", msg)
}

func TestSearchMesses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "annapurna", body["searchTerm"])
		writeJSON(w, http.StatusOK, `{"success":true,"messes":[{"_id":"a1","name":"Annapurna"},{"_id":"b2"}]}`)
	})

	messes, err := client.SearchMesses(context.Background(), entities.Session{}, "annapurna")
	require.NoError(t, err)
	require.Len(t, messes, 2)
	assert.Equal(t, "a1", messes[0].ID)
}

func TestLogout_IgnoresBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, logoutPath, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.Logout(context.Background(), testSession))
}

func TestDoJSON_TransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(server.URL, "accessToken", time.Second, nil)
	server.Close()

	_, err := client.FetchOwnProfile(context.Background(), testSession)
	require.Error(t, err)
	assert.ErrorIs(t, err, providers.ErrUnavailable)
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
	assert.NotEmpty(t, apperrors.MessageOf(err))
}

func TestDoJSON_CanceledContextIsCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"response":{"name":"late"}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profile, err := client.FetchOwnProfile(ctx, testSession)
	assert.Nil(t, profile)
	assert.Equal(t, apperrors.ErrorTypeCanceled, apperrors.TypeOf(err))
}
