package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
)

func TestWriteThenReadAndClear(t *testing.T) {
	sent := entities.Toast{Kind: entities.ToastWarning, Title: "Already Subscribed", Description: "You are already subscribed to this meal plan."}
	rec := httptest.NewRecorder()
	Write(rec, sent, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/mess/1", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()

	toast, ok := ReadAndClear(rec, req)
	require.True(t, ok)
	assert.Equal(t, sent, toast)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, CookieName, cleared[0].Name)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestWrite_DropsInvalidToasts(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, entities.Toast{Kind: entities.ToastError, Title: "  "}, false)
	Write(rec, entities.Toast{Kind: "loud", Title: "Hello"}, false)
	assert.Empty(t, rec.Result().Cookies())
}

func TestReadAndClear_IgnoresGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "bm90LWpzb24"})

	_, ok := ReadAndClear(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestReadAndClear_NoCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := ReadAndClear(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Empty(t, rec.Result().Cookies())
}
