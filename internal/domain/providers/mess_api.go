package providers

import (
	"context"
	"errors"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
)

// MessAPI is the backend collaborator that owns users, messes, ratings,
// subscriptions and reviews. Every call receives the caller's session
// explicitly. Failures are *errors.AppError values whose Type tells callers
// how to react.
type MessAPI interface {
	// FetchMessProfile returns the provider profile of a mess
	FetchMessProfile(ctx context.Context, sess entities.Session, messID string) (*entities.UserProfile, error)

	// FetchOwnProfile returns the profile of the session's user
	FetchOwnProfile(ctx context.Context, sess entities.Session) (*entities.UserProfile, error)

	// FetchRatings returns the rating summary of a mess, or nil when the
	// mess has no ratings yet
	FetchRatings(ctx context.Context, sess entities.Session, messID string) (*entities.MessRatingSummary, error)

	// CreateSubscription subscribes the session's user to a meal plan and
	// returns the backend message
	CreateSubscription(ctx context.Context, sess entities.Session, req entities.SubscriptionRequest, idempotencyKey string) (string, error)

	// SubmitReview stores a review and returns the backend message
	SubmitReview(ctx context.Context, sess entities.Session, review entities.ReviewSubmission, idempotencyKey string) (string, error)

	// SearchMesses returns the messes matching a search term
	SearchMesses(ctx context.Context, sess entities.Session, term string) ([]entities.MessSearchResult, error)

	// Logout ends the backend session
	Logout(ctx context.Context, sess entities.Session) error
}

// ReviewDraftStore keeps in-progress reviews between requests
type ReviewDraftStore interface {
	// Load returns the stored draft, or the zero draft when none exists
	Load(ctx context.Context, visitorID, messID string) (entities.ReviewDraft, error)

	// Save replaces the stored draft
	Save(ctx context.Context, visitorID, messID string, draft entities.ReviewDraft) error

	// Reset discards the stored draft
	Reset(ctx context.Context, visitorID, messID string) error
}

// ErrRejected marks a call the backend answered with success:false or an
// error status. The AppError message carries the backend's explanation.
var ErrRejected = errors.New("backend rejected the request")

// ErrUnavailable marks a call that produced no usable backend answer
// (transport failure, undecodable body).
var ErrUnavailable = errors.New("backend unavailable")
