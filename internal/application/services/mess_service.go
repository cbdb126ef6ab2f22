package services

import (
	"context"
	"strings"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

// MessService drives the mess detail view: loading a mess, subscribing to it
// and reviewing it.
type MessService struct {
	api    providers.MessAPI
	drafts providers.ReviewDraftStore
}

// NewMessService creates a new mess service
func NewMessService(api providers.MessAPI, drafts providers.ReviewDraftStore) *MessService {
	return &MessService{api: api, drafts: drafts}
}

// Load fetches the profile and then the ratings of a mess. Backend failures
// end in the error state; the first one halts the load. A returned error
// means the caller went away and nothing should be rendered.
func (s *MessService) Load(ctx context.Context, sess entities.Session, messID string) (*entities.MessDetail, error) {
	detail := &entities.MessDetail{LoadState: entities.NewLoadState(), MessID: messID}

	profile, err := s.api.FetchMessProfile(ctx, sess, messID)
	if err != nil {
		if isCanceled(err) {
			return nil, err
		}
		if err := detail.Fail(loadFailure(err, messageOr(err, msgProfileLoadFailed))); err != nil {
			return nil, err
		}
		return detail, nil
	}

	ratings, err := s.api.FetchRatings(ctx, sess, messID)
	if err != nil {
		if isCanceled(err) {
			return nil, err
		}
		if err := detail.Fail(loadFailure(err, msgRatingsLoadFailed)); err != nil {
			return nil, err
		}
		return detail, nil
	}

	detail.Profile = profile
	detail.Ratings = ratings
	detail.Draft = s.loadDraft(ctx, sess, messID)
	if err := detail.Complete(); err != nil {
		return nil, err
	}
	return detail, nil
}

// loadFailure picks the transport message for unreachable backends and the
// given rejection message otherwise
func loadFailure(err error, rejected string) string {
	if isUnavailable(err) {
		return msgLoadFailedPrefix + apperrors.MessageOf(err)
	}
	return rejected
}

func (s *MessService) loadDraft(ctx context.Context, sess entities.Session, messID string) entities.ReviewDraft {
	if sess.VisitorID == "" {
		return entities.ReviewDraft{}
	}
	draft, err := s.drafts.Load(ctx, sess.VisitorID, messID)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("mess_id", messID).Msg("Failed to load review draft")
		return entities.ReviewDraft{}
	}
	return draft
}

// CreateSubscription validates the form and subscribes the caller. The
// returned toast describes the outcome; an error is returned only when the
// caller went away.
func (s *MessService) CreateSubscription(ctx context.Context, sess entities.Session, messID, mealType, duration, idempotencyKey string) (entities.Toast, error) {
	if strings.TrimSpace(mealType) == "" || strings.TrimSpace(duration) == "" {
		return toast(entities.ToastError, titleIncomplete, descIncomplete), nil
	}
	durationMs := entities.DurationInMilliseconds(duration)
	if durationMs == 0 {
		return toast(entities.ToastError, titleSubscribeFailed, descInvalidDuration), nil
	}
	meal := entities.MealType(mealType)
	if !meal.Valid() {
		return toast(entities.ToastError, titleSubscribeFailed, descInvalidMealType), nil
	}

	_, err := s.api.CreateSubscription(ctx, sess, entities.SubscriptionRequest{
		MessID:                 messID,
		MealType:               meal,
		DurationInMilliseconds: durationMs,
	}, idempotencyKey)
	switch {
	case err == nil:
		return toast(entities.ToastSuccess, titleSubscribed, descSubscribed), nil
	case isCanceled(err):
		return entities.Toast{}, err
	case apperrors.Is(err, apperrors.ErrorTypeConflict):
		return toast(entities.ToastWarning, titleAlreadySub, descAlreadySub), nil
	default:
		observability.LoggerFromContext(ctx).Error().Err(err).Str("mess_id", messID).Msg("Subscription failed")
		return toast(entities.ToastError, titleSubscribeFailed, messageOr(err, descSubscribeFailed)), nil
	}
}

// ClickStar sets one rating dimension of the visitor's draft. The review
// text typed so far is kept with the draft.
func (s *MessService) ClickStar(ctx context.Context, sess entities.Session, messID, dimension string, value int, reviewText string) (entities.ReviewDraft, error) {
	dim, ok := entities.ParseRatingDimension(dimension)
	if !ok {
		return entities.ReviewDraft{}, apperrors.NewValidationError("unknown rating dimension")
	}
	if sess.VisitorID == "" {
		return entities.ReviewDraft{}, apperrors.NewValidationError("visitor is required")
	}

	draft, err := s.drafts.Load(ctx, sess.VisitorID, messID)
	if err != nil {
		return entities.ReviewDraft{}, apperrors.NewInternalError("load review draft", err)
	}
	if err := draft.SetStars(dim, value); err != nil {
		return entities.ReviewDraft{}, apperrors.NewValidationError(err.Error())
	}
	draft.Review = reviewText
	if err := s.drafts.Save(ctx, sess.VisitorID, messID, draft); err != nil {
		return entities.ReviewDraft{}, apperrors.NewInternalError("save review draft", err)
	}
	return draft, nil
}

// SubmitReview posts the visitor's draft with the given text. The draft is
// reset only when the backend accepts the review.
func (s *MessService) SubmitReview(ctx context.Context, sess entities.Session, messID, reviewText, idempotencyKey string) (entities.Toast, error) {
	logger := observability.LoggerFromContext(ctx)
	failed := toast(entities.ToastError, titleReviewFailed, descReviewFailed)

	var draft entities.ReviewDraft
	if sess.VisitorID != "" {
		var err error
		draft, err = s.drafts.Load(ctx, sess.VisitorID, messID)
		if err != nil {
			logger.Error().Err(err).Str("mess_id", messID).Msg("Failed to load review draft")
			return failed, nil
		}
		draft.Review = reviewText
		if err := s.drafts.Save(ctx, sess.VisitorID, messID, draft); err != nil {
			logger.Warn().Err(err).Str("mess_id", messID).Msg("Failed to keep review text")
		}
	} else {
		draft.Review = reviewText
	}

	_, err := s.api.SubmitReview(ctx, sess, entities.NewReviewSubmission(messID, draft), idempotencyKey)
	if err != nil {
		if isCanceled(err) {
			return entities.Toast{}, err
		}
		logger.Error().Err(err).Str("mess_id", messID).Msg("Review submission failed")
		return toast(entities.ToastError, titleReviewFailed, messageOr(err, descReviewFailed)), nil
	}

	if sess.VisitorID != "" {
		if err := s.drafts.Reset(ctx, sess.VisitorID, messID); err != nil {
			logger.Warn().Err(err).Str("mess_id", messID).Msg("Failed to reset review draft")
		}
	}
	return toast(entities.ToastSuccess, titleReviewSubmitted, descReviewSubmitted), nil
}
