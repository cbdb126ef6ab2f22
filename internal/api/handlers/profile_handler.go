package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/tastebuddies/frontend/internal/api/views"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
)

// ProfileService defines the profile operations used by the handler
type ProfileService interface {
	Load(ctx context.Context, sess entities.Session) (*entities.ProfileDetail, error)
}

// ProfileHandler serves the signed-in user's profile view
type ProfileHandler struct {
	service ProfileService
	pages   *Pages
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService, pages *Pages) *ProfileHandler {
	return &ProfileHandler{service: service, pages: pages}
}

// ShowProfile handles GET /user/profile
func (h *ProfileHandler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Read(r)
	h.pages.WritePage(w, r, sess, "Profile", http.StatusOK, views.ProfileShell())
}

// ProfileDetails handles GET /user/profile/details
func (h *ProfileHandler) ProfileDetails(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Read(r)

	detail, err := h.service.Load(r.Context(), sess)
	if err != nil {
		if isCanceled(r, err) {
			return
		}
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("Failed to load profile")
		h.pages.WriteError(w, r, sess, http.StatusInternalServerError, "Something went wrong.")
		return
	}
	h.pages.WritePanel(w, r, sess, "Profile", http.StatusOK, views.ProfilePanel(detail))
}
