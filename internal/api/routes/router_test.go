package routes_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/tastebuddies/frontend/internal/adapters/cache"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/handlers"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/routes"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/session"
	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers/mocks"
)

func newServer(t *testing.T) (http.Handler, *mocks.MessAPI) {
	return newServerWithOrigins(t, nil)
}

func newServerWithOrigins(t *testing.T, allowedOrigins []string) (http.Handler, *mocks.MessAPI) {
	api := mocks.NewMessAPI(t)
	drafts := cache.NewReviewDraftStore(cache.NewMemoryAdapter(0, time.Hour), time.Hour, nil)
	pages := handlers.NewPages(handlers.PageOptions{AppName: "Taste Buddies", LoginPath: "/login"},
		session.Cookies{SessionName: "accessToken", VisitorName: "tb_visitor"})

	router := routes.NewRouter(
		handlers.NewMessHandler(services.NewMessService(api, drafts), pages, "/food.jpeg"),
		handlers.NewHeaderHandler(services.NewHeaderService(api), pages, "/login"),
		handlers.NewProfileHandler(services.NewProfileService(api), pages),
		allowedOrigins,
		nil,
	)
	return router.SetupRoutes(), api
}

func TestRouter_Health(t *testing.T) {
	handler, _ := newServer(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_ServesStylesheet(t *testing.T) {
	handler, _ := newServer(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.NotEmpty(t, rec.Header().Get("ETag"))
}

func TestRouter_MessPageAndFragment(t *testing.T) {
	handler, api := newServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mess/m-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-get="/mess/m-1/details"`)
	assert.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))

	api.On("FetchMessProfile", mock.Anything, mock.Anything, "m-1").Return(&entities.UserProfile{Name: "Annapurna"}, nil).Once()
	api.On("FetchRatings", mock.Anything, mock.Anything, "m-1").Return(nil, nil).Once()
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mess/m-1/details", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No ratings available")
}

func TestRouter_SearchRedirects(t *testing.T) {
	handler, api := newServer(t)
	api.On("SearchMesses", mock.Anything, mock.Anything, "annapurna").
		Return([]entities.MessSearchResult{{ID: "a1"}}, nil).Once()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(url.Values{"searchTerm": {"annapurna"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/mess/a1", rec.Header().Get("Location"))
}

func TestRouter_MethodAndHome(t *testing.T) {
	handler, _ := newServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/user/profile", rec.Header().Get("Location"))
}

func subscribeRequest(origin, fetchSite string) *http.Request {
	form := url.Values{"mealType": {"Lunch"}, "duration": {"Monthly"}}
	req := httptest.NewRequest(http.MethodPost, "/mess/m-1/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "tok"})
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if fetchSite != "" {
		req.Header.Set("Sec-Fetch-Site", fetchSite)
	}
	return req
}

func TestRouter_RejectsCrossSitePosts(t *testing.T) {
	handler, api := newServerWithOrigins(t, []string{"*"})

	for _, path := range []string{"/mess/m-1/subscribe", "/mess/m-1/review", "/mess/m-1/review/star", "/logout", "/search"} {
		req := subscribeRequest("https://evil.example", "cross-site")
		req.URL.Path = path
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, path)
		assert.Empty(t, rec.Header().Values("Set-Cookie"), path)
	}
	api.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "SearchMesses", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_RejectsForeignOriginWithoutFetchMetadata(t *testing.T) {
	handler, api := newServer(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, subscribeRequest("https://evil.example", ""))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	api.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_AcceptsSameOriginAndTrustedPosts(t *testing.T) {
	handler, api := newServerWithOrigins(t, []string{"https://app.tastebuddies.example"})
	api.On("CreateSubscription", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("Subscribed", nil).Twice()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, subscribeRequest("", "same-origin"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, subscribeRequest("https://app.tastebuddies.example", "cross-site"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRouter_CrossSiteReadsStillServed(t *testing.T) {
	handler, _ := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/mess/m-1", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
