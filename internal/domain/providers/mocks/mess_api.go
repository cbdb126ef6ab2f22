// Package mocks holds testify mocks of the provider interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
)

var (
	_ providers.MessAPI          = (*MessAPI)(nil)
	_ providers.ReviewDraftStore = (*ReviewDraftStore)(nil)
)

// MessAPI is a mock of providers.MessAPI
type MessAPI struct {
	mock.Mock
}

// NewMessAPI creates a MessAPI mock whose expectations are asserted at cleanup
func NewMessAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessAPI {
	m := &MessAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MessAPI) FetchMessProfile(ctx context.Context, sess entities.Session, messID string) (*entities.UserProfile, error) {
	args := m.Called(ctx, sess, messID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MessAPI) FetchOwnProfile(ctx context.Context, sess entities.Session) (*entities.UserProfile, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MessAPI) FetchRatings(ctx context.Context, sess entities.Session, messID string) (*entities.MessRatingSummary, error) {
	args := m.Called(ctx, sess, messID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MessRatingSummary), args.Error(1)
}

func (m *MessAPI) CreateSubscription(ctx context.Context, sess entities.Session, req entities.SubscriptionRequest, idempotencyKey string) (string, error) {
	args := m.Called(ctx, sess, req, idempotencyKey)
	return args.String(0), args.Error(1)
}

func (m *MessAPI) SubmitReview(ctx context.Context, sess entities.Session, review entities.ReviewSubmission, idempotencyKey string) (string, error) {
	args := m.Called(ctx, sess, review, idempotencyKey)
	return args.String(0), args.Error(1)
}

func (m *MessAPI) SearchMesses(ctx context.Context, sess entities.Session, term string) ([]entities.MessSearchResult, error) {
	args := m.Called(ctx, sess, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MessSearchResult), args.Error(1)
}

func (m *MessAPI) Logout(ctx context.Context, sess entities.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

// ReviewDraftStore is a mock of providers.ReviewDraftStore
type ReviewDraftStore struct {
	mock.Mock
}

// NewReviewDraftStore creates a ReviewDraftStore mock whose expectations are
// asserted at cleanup
func NewReviewDraftStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewDraftStore {
	m := &ReviewDraftStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReviewDraftStore) Load(ctx context.Context, visitorID, messID string) (entities.ReviewDraft, error) {
	args := m.Called(ctx, visitorID, messID)
	return args.Get(0).(entities.ReviewDraft), args.Error(1)
}

func (m *ReviewDraftStore) Save(ctx context.Context, visitorID, messID string, draft entities.ReviewDraft) error {
	args := m.Called(ctx, visitorID, messID, draft)
	return args.Error(0)
}

func (m *ReviewDraftStore) Reset(ctx context.Context, visitorID, messID string) error {
	args := m.Called(ctx, visitorID, messID)
	return args.Error(0)
}
