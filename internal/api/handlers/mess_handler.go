package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/zatekoja/tastebuddies/frontend/internal/api/views"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

// MessService defines the mess operations used by the handler
type MessService interface {
	Load(ctx context.Context, sess entities.Session, messID string) (*entities.MessDetail, error)
	CreateSubscription(ctx context.Context, sess entities.Session, messID, mealType, duration, idempotencyKey string) (entities.Toast, error)
	ClickStar(ctx context.Context, sess entities.Session, messID, dimension string, value int, reviewText string) (entities.ReviewDraft, error)
	SubmitReview(ctx context.Context, sess entities.Session, messID, reviewText, idempotencyKey string) (entities.Toast, error)
}

// MessHandler serves the mess detail view
type MessHandler struct {
	service  MessService
	pages    *Pages
	imageURL string
}

// NewMessHandler creates a new mess handler
func NewMessHandler(service MessService, pages *Pages, imageURL string) *MessHandler {
	return &MessHandler{service: service, pages: pages, imageURL: imageURL}
}

// ShowMess handles GET /mess/{id}. It renders the page in the loading state;
// the details fragment performs the load. A subscription choice in the query
// is handed on to the form.
func (h *MessHandler) ShowMess(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Ensure(w, r)
	id := messID(r)
	if id == "" {
		h.pages.WriteError(w, r, sess, http.StatusNotFound, "Mess not found.")
		return
	}
	h.pages.WritePage(w, r, sess, "Mess", http.StatusOK, views.MessShell(id, views.ParseSubscriptionChoice(r.URL.Query())))
}

// MessDetails handles GET /mess/{id}/details
func (h *MessHandler) MessDetails(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Read(r)
	id := messID(r)

	detail, err := h.service.Load(r.Context(), sess, id)
	if err != nil {
		if isCanceled(r, err) {
			return
		}
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("mess_id", id).Msg("Failed to load mess")
		h.pages.WriteError(w, r, sess, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	h.pages.WritePanel(w, r, sess, "Mess", http.StatusOK, views.MessPanel(views.MessView{
		Detail:       detail,
		ImageURL:     h.imageURL,
		SubscribeKey: uuid.NewString(),
		ReviewKey:    uuid.NewString(),
		Choice:       views.ParseSubscriptionChoice(r.URL.Query()),
	}))
}

// Subscribe handles POST /mess/{id}/subscribe
func (h *MessHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Ensure(w, r)
	id := messID(r)
	if err := r.ParseForm(); err != nil {
		h.pages.WriteError(w, r, sess, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	toast, err := h.service.CreateSubscription(r.Context(), sess, id,
		r.PostForm.Get("mealType"), r.PostForm.Get("duration"), r.PostForm.Get("idempotencyKey"))
	if err != nil && isCanceled(r, err) {
		return
	}
	// The form starts over only after a successful subscription
	target := views.MessPath(id)
	if toast.Kind != entities.ToastSuccess {
		target = views.MessURL(id, views.ParseSubscriptionChoice(r.PostForm))
	}
	h.pages.RedirectWithToast(w, r, target, &toast)
}

// ClickStar handles POST /mess/{id}/review/star. HTMX requests get the
// refreshed review form; plain form posts are redirected back.
func (h *MessHandler) ClickStar(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Ensure(w, r)
	id := messID(r)
	if err := r.ParseForm(); err != nil {
		h.pages.WriteError(w, r, sess, http.StatusBadRequest, "Invalid form submission.")
		return
	}
	dimension, value, ok := views.ParseStarParam(r.PostForm.Get("star"))
	if !ok {
		h.pages.WriteError(w, r, sess, http.StatusBadRequest, "Invalid rating.")
		return
	}

	draft, err := h.service.ClickStar(r.Context(), sess, id, dimension, value, r.PostForm.Get("review"))
	if err != nil {
		if isCanceled(r, err) {
			return
		}
		if apperrors.Is(err, apperrors.ErrorTypeValidation) {
			h.pages.WriteError(w, r, sess, http.StatusBadRequest, "Invalid rating.")
			return
		}
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("mess_id", id).Msg("Failed to record star rating")
		h.pages.WriteError(w, r, sess, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	if isHTMX(r) {
		h.pages.WriteFragment(w, r, http.StatusOK, views.ReviewForm(id, draft, r.PostForm.Get("idempotencyKey")))
		return
	}
	http.Redirect(w, r, views.MessPath(id)+"#review-form", http.StatusSeeOther)
}

// SubmitReview handles POST /mess/{id}/review
func (h *MessHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	sess := h.pages.Cookies().Ensure(w, r)
	id := messID(r)
	if err := r.ParseForm(); err != nil {
		h.pages.WriteError(w, r, sess, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	toast, err := h.service.SubmitReview(r.Context(), sess, id, r.PostForm.Get("review"), r.PostForm.Get("idempotencyKey"))
	if err != nil && isCanceled(r, err) {
		return
	}
	// The form starts over only after a successful subscription
	target := views.MessPath(id)
	if toast.Kind != entities.ToastSuccess {
		target = views.MessURL(id, views.ParseSubscriptionChoice(r.PostForm))
	}
	h.pages.RedirectWithToast(w, r, target, &toast)
}
