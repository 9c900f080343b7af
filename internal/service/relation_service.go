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
)

// RelationService reads the questionrelation table.
type RelationService interface {
	// RelatedQuestions maps each related question to the smallest question
	// id of its connected component.
	RelatedQuestions(ctx context.Context) ([]domain.RelatedQuestion, error)
	// Relations returns the raw pairs sorted by id.
	Relations(ctx context.Context) ([]domain.QuestionRelation, error)
}

type relationService struct {
	reader port.DRHReader
	cache  domain.DocumentCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewRelationService caches the raw listing when c is non-nil.
func NewRelationService(reader port.DRHReader, c domain.DocumentCache, ttl time.Duration, logger *zap.Logger) RelationService {
	if ttl <= 0 {
		ttl = DefaultEntryCacheTTL
	}
	return &relationService{reader: reader, cache: c, ttl: ttl, logger: logger}
}

func (s *relationService) RelatedQuestions(ctx context.Context) ([]domain.RelatedQuestion, error) {
	rels, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	grouped := domain.GroupRelatedQuestions(rels)
	s.logger.Debug("Grouped question relations", zap.Int("relations", len(rels)), zap.Int("questions", len(grouped)))
	return grouped, nil
}

func (s *relationService) Relations(ctx context.Context) ([]domain.QuestionRelation, error) {
	rels, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortRelationsByID(rels), nil
}

func (s *relationService) load(ctx context.Context) ([]domain.QuestionRelation, error) {
	key := cache.RelationsKey()
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var rels []domain.QuestionRelation
			if jsonErr := json.Unmarshal(cached, &rels); jsonErr == nil {
				return rels, nil
			}
			s.logger.Warn("Discarding invalid cached question relations")
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Question relation cache lookup failed", zap.Error(err))
		}
	}

	raw, err := s.reader.QuestionRelations(ctx)
	if err != nil {
		return nil, err
	}
	rels := toQuestionRelations(raw)

	if s.cache != nil {
		if data, err := json.Marshal(rels); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				s.logger.Warn("Failed to cache question relations", zap.Error(err))
			}
		}
	}
	return rels, nil
}
