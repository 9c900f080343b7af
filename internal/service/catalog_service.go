package service

import (
	"context"

	"drh-client/internal/domain"
	"drh-client/internal/port"
	"drh-client/internal/validation"

	"go.uber.org/zap"
)

// TagKind selects between the entry_tags and region_tags endpoints.
type TagKind string

const (
	EntryTags  TagKind = "entry"
	RegionTags TagKind = "region"
)

// Page is one page of flattened list results.
type Page[T any] struct {
	Count int  `json:"count"`
	Next  bool `json:"has_next"`
	Rows  []T  `json:"rows"`
}

// EntryDetail gathers the metadata tables of one full entry.
type EntryDetail struct {
	Info   domain.EntryInfo       `json:"info"`
	Tags   []domain.EntryTagRow   `json:"tags"`
	Region *domain.EntryRegionRow `json:"region,omitempty"`
}

// CatalogService flattens the list and find endpoints into rows.
type CatalogService interface {
	Entries(ctx context.Context, params domain.ListParams) (*Page[domain.EntrySummaryRow], error)
	Tags(ctx context.Context, kind TagKind, params domain.ListParams) (*Page[domain.TagRow], error)
	Regions(ctx context.Context, params domain.ListParams) (*Page[domain.RegionRow], error)
	Entry(ctx context.Context, id int64) (*EntryDetail, error)
	Tag(ctx context.Context, kind TagKind, id int64) (*domain.TagRow, error)
	Region(ctx context.Context, id int64) (*domain.RegionRow, error)
}

type catalogService struct {
	reader    port.DRHReader
	validator *validation.Validator
	logger    *zap.Logger
}

func NewCatalogService(reader port.DRHReader, logger *zap.Logger) CatalogService {
	return &catalogService{reader: reader, validator: validation.NewValidator(), logger: logger}
}

func (s *catalogService) Entries(ctx context.Context, params domain.ListParams) (*Page[domain.EntrySummaryRow], error) {
	if errs := s.validator.ValidateListParams(params); len(errs) > 0 {
		return nil, errs
	}
	page, err := s.reader.ListEntries(ctx, params)
	if err != nil {
		return nil, err
	}
	out := &Page[domain.EntrySummaryRow]{Count: page.Count, Next: page.Next != nil, Rows: make([]domain.EntrySummaryRow, 0, len(page.Results))}
	for i := range page.Results {
		out.Rows = append(out.Rows, toEntrySummaryRow(&page.Results[i]))
	}
	return out, nil
}

func (s *catalogService) Tags(ctx context.Context, kind TagKind, params domain.ListParams) (*Page[domain.TagRow], error) {
	if errs := s.validator.ValidateListParams(params); len(errs) > 0 {
		return nil, errs
	}
	list := s.reader.ListEntryTags
	switch kind {
	case EntryTags, "":
	case RegionTags:
		list = s.reader.ListRegionTags
	default:
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("kind", string(kind))}
	}
	page, err := list(ctx, params)
	if err != nil {
		return nil, err
	}
	out := &Page[domain.TagRow]{Count: page.Count, Next: page.Next != nil, Rows: make([]domain.TagRow, 0, len(page.Results))}
	for i := range page.Results {
		out.Rows = append(out.Rows, toTagRow(&page.Results[i]))
	}
	return out, nil
}

func (s *catalogService) Regions(ctx context.Context, params domain.ListParams) (*Page[domain.RegionRow], error) {
	if errs := s.validator.ValidateListParams(params); len(errs) > 0 {
		return nil, errs
	}
	page, err := s.reader.ListRegions(ctx, params)
	if err != nil {
		return nil, err
	}
	out := &Page[domain.RegionRow]{Count: page.Count, Next: page.Next != nil, Rows: make([]domain.RegionRow, 0, len(page.Results))}
	for i := range page.Results {
		out.Rows = append(out.Rows, toRegionRow(&page.Results[i]))
	}
	return out, nil
}

// Entry reads one entry and extracts its metadata, tags and region.
func (s *catalogService) Entry(ctx context.Context, id int64) (*EntryDetail, error) {
	doc, err := s.reader.FindEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry, err := validation.EntryFromDocument(doc)
	if err != nil {
		s.logger.Warn("Entry document is malformed", zap.Int64("entry_id", id), zap.Error(err))
		return nil, domain.NewMalformedEntryError(id, err)
	}
	return &EntryDetail{
		Info:   entry.Info(),
		Tags:   entry.TagRows(),
		Region: toEntryRegionRow(entry, doc),
	}, nil
}

func (s *catalogService) Tag(ctx context.Context, kind TagKind, id int64) (*domain.TagRow, error) {
	find := s.reader.FindEntryTag
	switch kind {
	case EntryTags, "":
	case RegionTags:
		find = s.reader.FindRegionTag
	default:
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("kind", string(kind))}
	}
	tag, err := find(ctx, id)
	if err != nil {
		return nil, err
	}
	row := toTagRow(tag)
	return &row, nil
}

func (s *catalogService) Region(ctx context.Context, id int64) (*domain.RegionRow, error) {
	region, err := s.reader.FindRegion(ctx, id)
	if err != nil {
		return nil, err
	}
	row := toRegionRow(region)
	return &row, nil
}
