package services

import (
	"context"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

// ProfileService loads the signed-in user's own profile
type ProfileService struct {
	api providers.MessAPI
}

// NewProfileService creates a new profile service
func NewProfileService(api providers.MessAPI) *ProfileService {
	return &ProfileService{api: api}
}

// Load fetches the caller's profile. A returned error means the caller went
// away and nothing should be rendered.
func (s *ProfileService) Load(ctx context.Context, sess entities.Session) (*entities.ProfileDetail, error) {
	detail := &entities.ProfileDetail{LoadState: entities.NewLoadState()}

	profile, err := s.api.FetchOwnProfile(ctx, sess)
	if err != nil {
		if isCanceled(err) {
			return nil, err
		}
		message := messageOr(err, msgProfileLoadFailed)
		if isUnavailable(err) {
			message = msgProfileFailedError + apperrors.MessageOf(err)
		}
		if err := detail.Fail(message); err != nil {
			return nil, err
		}
		return detail, nil
	}

	detail.Profile = profile
	if err := detail.Complete(); err != nil {
		return nil, err
	}
	return detail, nil
}
