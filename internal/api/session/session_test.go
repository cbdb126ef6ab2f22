package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCookies = Cookies{SessionName: "accessToken", VisitorName: "tb_visitor"}

func TestRead(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/mess/1", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: " tok "})
	req.AddCookie(&http.Cookie{Name: "tb_visitor", Value: "v-1"})

	sess := testCookies.Read(req)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "v-1", sess.VisitorID)
	assert.True(t, sess.Authenticated())
}

func TestRead_Anonymous(t *testing.T) {
	sess := testCookies.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.VisitorID)
}

func TestEnsure_AssignsVisitorOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	sess := testCookies.Ensure(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(sess.VisitorID)
	require.NoError(t, err)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "tb_visitor", cookies[0].Name)
	assert.Equal(t, sess.VisitorID, cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	again := testCookies.Ensure(rec, req)
	assert.Equal(t, sess.VisitorID, again.VisitorID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEnsure_ReplacesMalformedVisitor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "tb_visitor", Value: "../../etc"})

	sess := testCookies.Ensure(httptest.NewRecorder(), req)
	assert.NotEqual(t, "../../etc", sess.VisitorID)
}

func TestClearSession(t *testing.T) {
	rec := httptest.NewRecorder()
	testCookies.ClearSession(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
