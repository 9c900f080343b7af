package drhapi

import (
	"context"
	"encoding/json"
	"strconv"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
)

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

// FetchEntry returns the raw document of GET entries/{id}.
func (c *Client) FetchEntry(ctx context.Context, entryID int64) (json.RawMessage, error) {
	return c.getRaw(ctx, "entries/{id}", idParam(entryID), nil)
}

func (c *Client) FindEntry(ctx context.Context, entryID int64) (*dto.EntryDocument, error) {
	var doc dto.EntryDocument
	if err := c.get(ctx, "entries/{id}", idParam(entryID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) FindEntryTag(ctx context.Context, tagID int64) (*dto.Tag, error) {
	var tag dto.Tag
	if err := c.get(ctx, "entry_tags/{id}", idParam(tagID), nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) FindRegion(ctx context.Context, regionID int64) (*dto.Region, error) {
	var region dto.Region
	if err := c.get(ctx, "regions/{id}", idParam(regionID), nil, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

func (c *Client) FindRegionTag(ctx context.Context, tagID int64) (*dto.Tag, error) {
	var tag dto.Tag
	if err := c.get(ctx, "region_tags/{id}", idParam(tagID), nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) ListEntries(ctx context.Context, params domain.ListParams) (*dto.EntryPage, error) {
	return list[dto.EntryListItem](ctx, c, "entries", params, entryParams)
}

func (c *Client) ListEntryTags(ctx context.Context, params domain.ListParams) (*dto.TagPage, error) {
	return list[dto.Tag](ctx, c, "entry_tags", params, entryTagParams)
}

func (c *Client) ListRegions(ctx context.Context, params domain.ListParams) (*dto.RegionPage, error) {
	return list[dto.Region](ctx, c, "regions", params, regionParams)
}

func (c *Client) ListRegionTags(ctx context.Context, params domain.ListParams) (*dto.TagPage, error) {
	return list[dto.Tag](ctx, c, "region_tags", params, regionTagParams)
}

func list[T any](ctx context.Context, c *Client, endpoint string, params domain.ListParams, allowed []string) (*dto.Page[T], error) {
	query, err := QueryParams(params, allowed)
	if err != nil {
		return nil, err
	}
	var page dto.Page[T]
	if err := c.get(ctx, endpoint, nil, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// QuestionRelations returns every pair of the questionrelation table.
func (c *Client) QuestionRelations(ctx context.Context) ([]dto.QuestionRelation, error) {
	var relations []dto.QuestionRelation
	if err := c.get(ctx, "questionrelation", nil, nil, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// EntriesByQuestion returns the entries answering the question with the
// given exact name.
func (c *Client) EntriesByQuestion(ctx context.Context, questionName string) ([]dto.QuestionEntry, error) {
	var entries []dto.QuestionEntry
	query := map[string]string{"question_name": questionName}
	if err := c.get(ctx, "entries-by-question", nil, query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
