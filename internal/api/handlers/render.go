package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/zatekoja/tastebuddies/frontend/internal/api/flash"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/session"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/views"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

// PageOptions are the site-wide settings every page is rendered with
type PageOptions struct {
	AppName       string
	HTMXScriptURL string
	LoginPath     string
}

// Pages renders full pages and fragments and performs redirects
type Pages struct {
	options PageOptions
	cookies session.Cookies
}

// NewPages creates a page renderer
func NewPages(options PageOptions, cookies session.Cookies) *Pages {
	return &Pages{options: options, cookies: cookies}
}

// Cookies returns the cookie policy pages are rendered with
func (p *Pages) Cookies() session.Cookies {
	return p.cookies
}

// WritePage renders body inside the site layout. A pending toast is shown
// once and cleared.
func (p *Pages) WritePage(w http.ResponseWriter, r *http.Request, sess entities.Session, title string, statusCode int, body templ.Component) {
	data := views.PageData{
		Title:         title,
		HTMXScriptURL: p.options.HTMXScriptURL,
		Header: views.HeaderData{
			AppName:       p.options.AppName,
			Authenticated: sess.Authenticated(),
			LoginPath:     p.options.LoginPath,
		},
	}
	if toast, ok := flash.ReadAndClear(w, r); ok {
		data.Toast = &toast
	}
	writeComponent(w, r, statusCode, views.Page(data, body))
}

// WriteFragment renders a component without the layout, for HTMX swaps
func (p *Pages) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, body templ.Component) {
	writeComponent(w, r, statusCode, body)
}

// WritePanel renders a loaded panel as a fragment for HTMX swaps, or inside
// the layout when the browser followed a plain link to it.
func (p *Pages) WritePanel(w http.ResponseWriter, r *http.Request, sess entities.Session, title string, statusCode int, body templ.Component) {
	if isHTMX(r) {
		p.WriteFragment(w, r, statusCode, body)
		return
	}
	p.WritePage(w, r, sess, title, statusCode, body)
}

// WriteError renders an error as a page, or as a fragment for HTMX requests
func (p *Pages) WriteError(w http.ResponseWriter, r *http.Request, sess entities.Session, statusCode int, message string) {
	body := views.ErrorMessage(http.StatusText(statusCode), message)
	if isHTMX(r) {
		p.WriteFragment(w, r, statusCode, body)
		return
	}
	p.WritePage(w, r, sess, http.StatusText(statusCode), statusCode, body)
}

// RedirectWithToast stores a toast for the next page and redirects with 303
func (p *Pages) RedirectWithToast(w http.ResponseWriter, r *http.Request, target string, toast *entities.Toast) {
	if toast != nil {
		flash.Write(w, *toast, p.cookies.Secure)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func writeComponent(w http.ResponseWriter, r *http.Request, statusCode int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		if r.Context().Err() != nil {
			return
		}
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Failed to render view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// isCanceled reports whether the caller went away. Nothing is written then.
func isCanceled(r *http.Request, err error) bool {
	if apperrors.Is(err, apperrors.ErrorTypeCanceled) || r.Context().Err() != nil {
		observability.LoggerFromContext(r.Context()).Debug().Str("path", r.URL.Path).Msg("Request canceled, discarding response")
		return true
	}
	return false
}

// backPath returns the same-site page the request came from, or fallback
func backPath(r *http.Request, fallback string) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return fallback
	}
	u, err := url.Parse(referer)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return fallback
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

// messID reads the mess id path segment
func messID(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("id"))
}
