package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
)

const reviewDraftKeyPrefix = "tastebuddies:review-draft"

// ReviewDraftStore persists review drafts as JSON in a CacheProvider
type ReviewDraftStore struct {
	cache   providers.CacheProvider
	ttl     time.Duration
	metrics *observability.Metrics
}

var _ providers.ReviewDraftStore = (*ReviewDraftStore)(nil)

// NewReviewDraftStore creates a draft store. Drafts idle for longer than ttl
// are forgotten.
func NewReviewDraftStore(cache providers.CacheProvider, ttl time.Duration, metrics *observability.Metrics) *ReviewDraftStore {
	return &ReviewDraftStore{cache: cache, ttl: ttl, metrics: metrics}
}

func reviewDraftKey(visitorID, messID string) string {
	return fmt.Sprintf("%s:%s:%s", reviewDraftKeyPrefix, visitorID, messID)
}

// Load returns the stored draft, or the zero draft when none exists
func (s *ReviewDraftStore) Load(ctx context.Context, visitorID, messID string) (entities.ReviewDraft, error) {
	key := reviewDraftKey(visitorID, messID)
	data, err := s.cache.Get(ctx, key)
	if errors.Is(err, providers.ErrCacheMiss) {
		observability.RecordCacheMiss(ctx, s.metrics, reviewDraftKeyPrefix)
		return entities.ReviewDraft{}, nil
	}
	if err != nil {
		return entities.ReviewDraft{}, fmt.Errorf("load review draft: %w", err)
	}
	observability.RecordCacheHit(ctx, s.metrics, reviewDraftKeyPrefix)

	var draft entities.ReviewDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		// A corrupt entry is treated as no draft; the next save overwrites it.
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("Discarding unreadable review draft")
		return entities.ReviewDraft{}, nil
	}
	return draft, nil
}

// Save replaces the stored draft
func (s *ReviewDraftStore) Save(ctx context.Context, visitorID, messID string, draft entities.ReviewDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode review draft: %w", err)
	}
	if err := s.cache.Set(ctx, reviewDraftKey(visitorID, messID), data, int(s.ttl/time.Second)); err != nil {
		return fmt.Errorf("save review draft: %w", err)
	}
	return nil
}

// Reset discards the stored draft
func (s *ReviewDraftStore) Reset(ctx context.Context, visitorID, messID string) error {
	if err := s.cache.Delete(ctx, reviewDraftKey(visitorID, messID)); err != nil {
		return fmt.Errorf("reset review draft: %w", err)
	}
	return nil
}
