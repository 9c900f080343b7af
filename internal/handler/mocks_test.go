package handler_test

import (
	"context"
	"encoding/json"
	"time"

	"drh-client/internal/domain"
	"drh-client/internal/service"
)

// MockAnswerService
type MockAnswerService struct {
	AnswersForEntriesFunc func(ctx context.Context, ids []int64) (*domain.AnswerTable, error)
	AnswersForEntryFunc   func(ctx context.Context, id int64) ([]domain.AnswerRow, error)
	AnswersForSearchFunc  func(ctx context.Context, params domain.ListParams) (*domain.AnswerTable, error)
	StoreFunc             func(ctx context.Context, ids []int64, table *domain.AnswerTable) (*domain.ExtractionRun, error)
	GetRunFunc            func(ctx context.Context, runID string) (*domain.ExtractionRun, []domain.AnswerRow, error)
}

func (m *MockAnswerService) AnswersForEntries(ctx context.Context, ids []int64) (*domain.AnswerTable, error) {
	if m.AnswersForEntriesFunc != nil {
		return m.AnswersForEntriesFunc(ctx, ids)
	}
	panic("MockAnswerService.AnswersForEntriesFunc not implemented")
}
func (m *MockAnswerService) AnswersForEntry(ctx context.Context, id int64) ([]domain.AnswerRow, error) {
	if m.AnswersForEntryFunc != nil {
		return m.AnswersForEntryFunc(ctx, id)
	}
	panic("MockAnswerService.AnswersForEntryFunc not implemented")
}
func (m *MockAnswerService) AnswersForSearch(ctx context.Context, params domain.ListParams) (*domain.AnswerTable, error) {
	if m.AnswersForSearchFunc != nil {
		return m.AnswersForSearchFunc(ctx, params)
	}
	panic("MockAnswerService.AnswersForSearchFunc not implemented")
}
func (m *MockAnswerService) Store(ctx context.Context, ids []int64, table *domain.AnswerTable) (*domain.ExtractionRun, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, ids, table)
	}
	panic("MockAnswerService.StoreFunc not implemented")
}
func (m *MockAnswerService) GetRun(ctx context.Context, runID string) (*domain.ExtractionRun, []domain.AnswerRow, error) {
	if m.GetRunFunc != nil {
		return m.GetRunFunc(ctx, runID)
	}
	panic("MockAnswerService.GetRunFunc not implemented")
}

// MockCatalogService
type MockCatalogService struct {
	EntriesFunc func(ctx context.Context, params domain.ListParams) (*service.Page[domain.EntrySummaryRow], error)
	TagsFunc    func(ctx context.Context, kind service.TagKind, params domain.ListParams) (*service.Page[domain.TagRow], error)
	RegionsFunc func(ctx context.Context, params domain.ListParams) (*service.Page[domain.RegionRow], error)
	EntryFunc   func(ctx context.Context, id int64) (*service.EntryDetail, error)
	TagFunc     func(ctx context.Context, kind service.TagKind, id int64) (*domain.TagRow, error)
	RegionFunc  func(ctx context.Context, id int64) (*domain.RegionRow, error)
}

func (m *MockCatalogService) Entries(ctx context.Context, params domain.ListParams) (*service.Page[domain.EntrySummaryRow], error) {
	if m.EntriesFunc != nil {
		return m.EntriesFunc(ctx, params)
	}
	panic("MockCatalogService.EntriesFunc not implemented")
}
func (m *MockCatalogService) Tags(ctx context.Context, kind service.TagKind, params domain.ListParams) (*service.Page[domain.TagRow], error) {
	if m.TagsFunc != nil {
		return m.TagsFunc(ctx, kind, params)
	}
	panic("MockCatalogService.TagsFunc not implemented")
}
func (m *MockCatalogService) Regions(ctx context.Context, params domain.ListParams) (*service.Page[domain.RegionRow], error) {
	if m.RegionsFunc != nil {
		return m.RegionsFunc(ctx, params)
	}
	panic("MockCatalogService.RegionsFunc not implemented")
}
func (m *MockCatalogService) Entry(ctx context.Context, id int64) (*service.EntryDetail, error) {
	if m.EntryFunc != nil {
		return m.EntryFunc(ctx, id)
	}
	panic("MockCatalogService.EntryFunc not implemented")
}
func (m *MockCatalogService) Tag(ctx context.Context, kind service.TagKind, id int64) (*domain.TagRow, error) {
	if m.TagFunc != nil {
		return m.TagFunc(ctx, kind, id)
	}
	panic("MockCatalogService.TagFunc not implemented")
}
func (m *MockCatalogService) Region(ctx context.Context, id int64) (*domain.RegionRow, error) {
	if m.RegionFunc != nil {
		return m.RegionFunc(ctx, id)
	}
	panic("MockCatalogService.RegionFunc not implemented")
}

// MockRelationService
type MockRelationService struct {
	RelatedQuestionsFunc func(ctx context.Context) ([]domain.RelatedQuestion, error)
	RelationsFunc        func(ctx context.Context) ([]domain.QuestionRelation, error)
}

func (m *MockRelationService) RelatedQuestions(ctx context.Context) ([]domain.RelatedQuestion, error) {
	if m.RelatedQuestionsFunc != nil {
		return m.RelatedQuestionsFunc(ctx)
	}
	panic("MockRelationService.RelatedQuestionsFunc not implemented")
}
func (m *MockRelationService) Relations(ctx context.Context) ([]domain.QuestionRelation, error) {
	if m.RelationsFunc != nil {
		return m.RelationsFunc(ctx)
	}
	panic("MockRelationService.RelationsFunc not implemented")
}

// MockQuestionService
type MockQuestionService struct {
	EntriesByQuestionFunc func(ctx context.Context, questionName string) ([]domain.QuestionAnswerRow, error)
}

func (m *MockQuestionService) EntriesByQuestion(ctx context.Context, questionName string) ([]domain.QuestionAnswerRow, error) {
	if m.EntriesByQuestionFunc != nil {
		return m.EntriesByQuestionFunc(ctx, questionName)
	}
	panic("MockQuestionService.EntriesByQuestionFunc not implemented")
}

// MockCache
type MockCache struct {
	PingErr error
}

func (m *MockCache) Get(context.Context, string) (json.RawMessage, error) {
	return nil, domain.ErrCacheMiss
}
func (m *MockCache) Set(context.Context, string, json.RawMessage, time.Duration) error {
	return nil
}
func (m *MockCache) Delete(context.Context, ...string) error { return nil }
func (m *MockCache) Ping(context.Context) error              { return m.PingErr }
