package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/tastebuddies/frontend/internal/api/views"
	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
)

// fallbackPath is where a search without a usable Referer returns to
const fallbackPath = "/user"

// HeaderService defines the header operations used by the handler
type HeaderService interface {
	SubmitSearch(ctx context.Context, sess entities.Session, term string) (services.SearchOutcome, error)
	Logout(ctx context.Context, sess entities.Session)
}

// HeaderHandler serves the search box and logout button
type HeaderHandler struct {
	service   HeaderService
	pages     *Pages
	loginPath string
}

// NewHeaderHandler creates a new header handler
func NewHeaderHandler(service HeaderService, pages *Pages, loginPath string) *HeaderHandler {
	return &HeaderHandler{service: service, pages: pages, loginPath: loginPath}
}

// Search handles POST /search. A match opens the mess; anything else returns
// to the current page with a toast.
func (h *HeaderHandler) Search(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Read(r)
	if err := r.ParseForm(); err != nil {
		h.pages.WriteError(w, r, sess, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	outcome, err := h.service.SubmitSearch(r.Context(), sess, r.PostForm.Get("searchTerm"))
	if err != nil {
		if isCanceled(r, err) {
			return
		}
		h.pages.WriteError(w, r, sess, http.StatusInternalServerError, "Something went wrong.")
		return
	}
	if outcome.MessID != "" {
		http.Redirect(w, r, views.MessPath(outcome.MessID), http.StatusSeeOther)
		return
	}
	h.pages.RedirectWithToast(w, r, backPath(r, fallbackPath), outcome.Toast)
}

// Logout handles POST /logout. The visitor always ends up signed out and on
// the login page, whatever the backend answered.
func (h *HeaderHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Read(r)
	h.service.Logout(r.Context(), sess)
	h.pages.Cookies().ClearSession(w)
	http.Redirect(w, r, h.loginPath, http.StatusSeeOther)
}
