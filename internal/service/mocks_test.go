package service

import (
	"context"
	"encoding/json"
	"time"

	"drh-client/internal/domain"
	"drh-client/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockDRHReader ---
type MockDRHReader struct {
	mock.Mock
}

func (m *MockDRHReader) FetchEntry(ctx context.Context, entryID int64) (json.RawMessage, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockDRHReader) FindEntry(ctx context.Context, entryID int64) (*dto.EntryDocument, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EntryDocument), args.Error(1)
}

func (m *MockDRHReader) FindEntryTag(ctx context.Context, tagID int64) (*dto.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Tag), args.Error(1)
}

func (m *MockDRHReader) FindRegion(ctx context.Context, regionID int64) (*dto.Region, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Region), args.Error(1)
}

func (m *MockDRHReader) FindRegionTag(ctx context.Context, tagID int64) (*dto.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Tag), args.Error(1)
}

func (m *MockDRHReader) ListEntries(ctx context.Context, params domain.ListParams) (*dto.EntryPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EntryPage), args.Error(1)
}

func (m *MockDRHReader) ListEntryTags(ctx context.Context, params domain.ListParams) (*dto.TagPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagPage), args.Error(1)
}

func (m *MockDRHReader) ListRegions(ctx context.Context, params domain.ListParams) (*dto.RegionPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RegionPage), args.Error(1)
}

func (m *MockDRHReader) ListRegionTags(ctx context.Context, params domain.ListParams) (*dto.TagPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagPage), args.Error(1)
}

func (m *MockDRHReader) QuestionRelations(ctx context.Context) ([]dto.QuestionRelation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QuestionRelation), args.Error(1)
}

func (m *MockDRHReader) EntriesByQuestion(ctx context.Context, questionName string) ([]dto.QuestionEntry, error) {
	args := m.Called(ctx, questionName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QuestionEntry), args.Error(1)
}

// --- MockDRHWriter ---
type MockDRHWriter struct {
	mock.Mock
}

func (m *MockDRHWriter) result(args mock.Arguments) (json.RawMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockDRHWriter) AddEntry(ctx context.Context, req *dto.NewEntryRequest) (json.RawMessage, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockDRHWriter) AddAnswerSet(ctx context.Context, entryID int64, req *dto.NewAnswerSetRequest) (json.RawMessage, error) {
	return m.result(m.Called(ctx, entryID, req))
}

func (m *MockDRHWriter) AddEntryTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockDRHWriter) AddRegionTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockDRHWriter) AddRegion(ctx context.Context, req *dto.NewRegionRequest) (json.RawMessage, error) {
	return m.result(m.Called(ctx, req))
}

// --- MockCache ---
// MockCache takes and records documents as strings to keep expectations short.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	args := m.Called(ctx, key)
	if doc := args.String(0); doc != "" {
		return json.RawMessage(doc), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, doc json.RawMessage, ttl time.Duration) error {
	args := m.Called(ctx, key, string(doc), ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockAnswerRowRepository ---
type MockAnswerRowRepository struct {
	mock.Mock
}

func (m *MockAnswerRowRepository) SaveRun(ctx context.Context, run *domain.ExtractionRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockAnswerRowRepository) SaveRows(ctx context.Context, runID string, rows []domain.AnswerRow) error {
	args := m.Called(ctx, runID, rows)
	return args.Error(0)
}

func (m *MockAnswerRowRepository) GetRun(ctx context.Context, runID string) (*domain.ExtractionRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionRun), args.Error(1)
}

func (m *MockAnswerRowRepository) GetRowsByRun(ctx context.Context, runID string) ([]domain.AnswerRow, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerRow), args.Error(1)
}

// --- MockTransactionManager ---
// MockTransactionManager runs fn directly so the repository mocks see the calls.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
