package port

import (
	"context"
	"encoding/json"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
)

// EntryFetcher returns the raw JSON document of one entry so that callers
// can cache it verbatim.
type EntryFetcher interface {
	FetchEntry(ctx context.Context, entryID int64) (json.RawMessage, error)
}

// DRHReader covers the public read endpoints of the DRH API.
type DRHReader interface {
	EntryFetcher

	FindEntry(ctx context.Context, entryID int64) (*dto.EntryDocument, error)
	FindEntryTag(ctx context.Context, tagID int64) (*dto.Tag, error)
	FindRegion(ctx context.Context, regionID int64) (*dto.Region, error)
	FindRegionTag(ctx context.Context, tagID int64) (*dto.Tag, error)

	ListEntries(ctx context.Context, params domain.ListParams) (*dto.EntryPage, error)
	ListEntryTags(ctx context.Context, params domain.ListParams) (*dto.TagPage, error)
	ListRegions(ctx context.Context, params domain.ListParams) (*dto.RegionPage, error)
	ListRegionTags(ctx context.Context, params domain.ListParams) (*dto.TagPage, error)

	QuestionRelations(ctx context.Context) ([]dto.QuestionRelation, error)
	EntriesByQuestion(ctx context.Context, questionName string) ([]dto.QuestionEntry, error)
}

// DRHWriter covers the authenticated write endpoints. Writes are never
// retried.
type DRHWriter interface {
	AddEntry(ctx context.Context, req *dto.NewEntryRequest) (json.RawMessage, error)
	AddAnswerSet(ctx context.Context, entryID int64, req *dto.NewAnswerSetRequest) (json.RawMessage, error)
	AddEntryTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error)
	AddRegionTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error)
	AddRegion(ctx context.Context, req *dto.NewRegionRequest) (json.RawMessage, error)
}
