package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zatekoja/tastebuddies/frontend/internal/adapters/cache"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/flash"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/handlers"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/session"
	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers/mocks"
)

const visitorID = "0b7e4f3a-7c1d-4c55-9a51-2f7f0e6f2a10"

var testCookies = session.Cookies{SessionName: "accessToken", VisitorName: "tb_visitor"}

var testSession = entities.Session{Token: "tok", VisitorID: visitorID}

func newPages() *handlers.Pages {
	return handlers.NewPages(handlers.PageOptions{
		AppName:       "Taste Buddies",
		HTMXScriptURL: "/htmx.js",
		LoginPath:     "/login",
	}, testCookies)
}

type messFixture struct {
	api     *mocks.MessAPI
	drafts  *cache.ReviewDraftStore
	handler *handlers.MessHandler
}

func newMessFixture(t *testing.T) *messFixture {
	api := mocks.NewMessAPI(t)
	drafts := cache.NewReviewDraftStore(cache.NewMemoryAdapter(0, time.Hour), time.Hour, nil)
	return &messFixture{
		api:     api,
		drafts:  drafts,
		handler: handlers.NewMessHandler(services.NewMessService(api, drafts), newPages(), "/food.jpeg"),
	}
}

// newRequest builds a request from a signed-in visitor for the mess route
func newRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: testSession.Token})
	req.AddCookie(&http.Cookie{Name: "tb_visitor", Value: visitorID})
	return req
}

func withMessID(req *http.Request, id string) *http.Request {
	req.SetPathValue("id", id)
	return req
}

// toastFrom decodes the flash toast a response set, if any
func toastFrom(t *testing.T, rec *httptest.ResponseRecorder) (entities.Toast, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return flash.ReadAndClear(nil, req)
}

func canceledContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, ctx.Err())
	return ctx
}
