package services

import (
	"context"
	"strings"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
)

// SearchOutcome is where a search leads: a mess to open, or a toast to show
// without navigating.
type SearchOutcome struct {
	MessID string
	Toast  *entities.Toast
}

// HeaderService backs the search box and logout button shown on every page
type HeaderService struct {
	api providers.MessAPI
}

// NewHeaderService creates a new header service
func NewHeaderService(api providers.MessAPI) *HeaderService {
	return &HeaderService{api: api}
}

// SubmitSearch looks up messes by name and opens the first match. An empty
// term is rejected without calling the backend.
func (s *HeaderService) SubmitSearch(ctx context.Context, sess entities.Session, term string) (SearchOutcome, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return notice(entities.ToastError, msgEmptySearch), nil
	}

	messes, err := s.api.SearchMesses(ctx, sess, term)
	switch {
	case err == nil:
	case isCanceled(err):
		return SearchOutcome{}, err
	case isUnavailable(err):
		observability.LoggerFromContext(ctx).Error().Err(err).Str("term", term).Msg("Mess search failed")
		return notice(entities.ToastError, msgSearchUnavailable), nil
	default:
		return notice(entities.ToastError, msgSearchErrorPrefix+messageOr(err, "")), nil
	}

	if len(messes) == 0 || messes[0].ID == "" {
		return notice(entities.ToastInfo, msgNoMessFound), nil
	}
	return SearchOutcome{MessID: messes[0].ID}, nil
}

// Logout ends the backend session. Failures are logged only; the caller
// signs the visitor out locally either way.
func (s *HeaderService) Logout(ctx context.Context, sess entities.Session) {
	if err := s.api.Logout(ctx, sess); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Backend logout failed")
	}
}

func notice(kind entities.ToastKind, title string) SearchOutcome {
	t := toast(kind, title, "")
	return SearchOutcome{Toast: &t}
}
