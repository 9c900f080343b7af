package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"drh-client/internal/cache"
	"drh-client/internal/domain"
	"drh-client/internal/port"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultEntryCacheTTL applies when no cache_ttls.entry is configured.
const DefaultEntryCacheTTL = 24 * time.Hour

// EntryCacheService fetches raw entry documents through a read-through cache.
type EntryCacheService interface {
	port.EntryFetcher
	Invalidate(ctx context.Context, entryIDs ...int64) error
}

type entryCacheServiceImpl struct {
	next   port.EntryFetcher
	cache  domain.DocumentCache
	ttl    time.Duration
	logger *zap.Logger
	fetch  singleflight.Group
}

// NewEntryCacheService wraps next with cache. A nil cache yields a
// pass-through service.
func NewEntryCacheService(next port.EntryFetcher, c domain.DocumentCache, ttl time.Duration, logger *zap.Logger) EntryCacheService {
	if c == nil {
		logger.Debug("Entry cache disabled, fetching every entry from the API")
		return &noopEntryCacheService{next: next}
	}
	if ttl <= 0 {
		ttl = DefaultEntryCacheTTL
	}
	return &entryCacheServiceImpl{next: next, cache: c, ttl: ttl, logger: logger}
}

// FetchEntry serves the document from cache when present. Cache failures are
// logged and fall through to the API.
func (s *entryCacheServiceImpl) FetchEntry(ctx context.Context, entryID int64) (json.RawMessage, error) {
	key := cache.EntryKey(entryID)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && json.Valid(cached):
		s.logger.Debug("Entry cache hit", zap.Int64("entry_id", entryID))
		return cached, nil
	case err == nil:
		s.logger.Warn("Discarding invalid cached entry", zap.Int64("entry_id", entryID))
		if delErr := s.cache.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Failed to delete cached entry", zap.Int64("entry_id", entryID), zap.Error(delErr))
		}
	case errors.Is(err, domain.ErrCacheMiss):
		s.logger.Debug("Entry cache miss", zap.Int64("entry_id", entryID))
	default:
		s.logger.Warn("Entry cache lookup failed", zap.Int64("entry_id", entryID), zap.Error(err))
	}

	// Concurrent misses for one entry share a single API call.
	res, err, _ := s.fetch.Do(key, func() (interface{}, error) {
		raw, err := s.next.FetchEntry(ctx, entryID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("Failed to cache entry", zap.Int64("entry_id", entryID), zap.Error(err))
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(json.RawMessage), nil
}

func (s *entryCacheServiceImpl) Invalidate(ctx context.Context, entryIDs ...int64) error {
	keys := make([]string, len(entryIDs))
	for i, id := range entryIDs {
		keys[i] = cache.EntryKey(id)
	}
	return s.cache.Delete(ctx, keys...)
}

type noopEntryCacheService struct {
	next port.EntryFetcher
}

func (s *noopEntryCacheService) FetchEntry(ctx context.Context, entryID int64) (json.RawMessage, error) {
	return s.next.FetchEntry(ctx, entryID)
}

func (s *noopEntryCacheService) Invalidate(context.Context, ...int64) error {
	return nil
}
