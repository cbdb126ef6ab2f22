// Package session reads the caller's credentials from request cookies and
// manages the anonymous visitor cookie that scopes server-side view state.
package session

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
)

// visitorMaxAge keeps the visitor cookie for a year
const visitorMaxAge = 365 * 24 * 60 * 60

// Cookies knows the names and policy of the cookies the front-end uses
type Cookies struct {
	SessionName string
	VisitorName string
	Secure      bool
}

// Read extracts the explicit session for one request. It never writes;
// an unknown visitor yields an empty VisitorID.
func (c Cookies) Read(r *http.Request) entities.Session {
	return entities.Session{
		Token:     readCookie(r, c.SessionName),
		VisitorID: readCookie(r, c.VisitorName),
	}
}

// Ensure returns the session and assigns a new visitor id when the request
// has none. The new id is set on w so later requests reuse it.
func (c Cookies) Ensure(w http.ResponseWriter, r *http.Request) entities.Session {
	sess := c.Read(r)
	if _, err := uuid.Parse(sess.VisitorID); err == nil {
		return sess
	}
	sess.VisitorID = uuid.NewString()
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     c.VisitorName,
			Value:    sess.VisitorID,
			Path:     "/",
			MaxAge:   visitorMaxAge,
			HttpOnly: true,
			Secure:   c.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// ClearSession expires the backend session cookie held by the browser
func (c Cookies) ClearSession(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.SessionName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func readCookie(r *http.Request, name string) string {
	if r == nil || name == "" {
		return ""
	}
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}
