package drhapi

import (
	"context"
	"encoding/json"

	"drh-client/internal/dto"
)

func (c *Client) AddEntry(ctx context.Context, req *dto.NewEntryRequest) (json.RawMessage, error) {
	return c.post(ctx, "entries/", nil, req)
}

// AddAnswerSet adds an answer set to an existing entry.
func (c *Client) AddAnswerSet(ctx context.Context, entryID int64, req *dto.NewAnswerSetRequest) (json.RawMessage, error) {
	return c.post(ctx, "entries/{id}/answersets/", idParam(entryID), req)
}

func (c *Client) AddEntryTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error) {
	return c.post(ctx, "entry_tags/", nil, req)
}

func (c *Client) AddRegionTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error) {
	return c.post(ctx, "region_tags/", nil, req)
}

func (c *Client) AddRegion(ctx context.Context, req *dto.NewRegionRequest) (json.RawMessage, error) {
	return c.post(ctx, "regions/", nil, req)
}
