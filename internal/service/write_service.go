package service

import (
	"context"
	"encoding/json"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
	"drh-client/internal/port"
	"drh-client/internal/validation"

	"go.uber.org/zap"
)

var errMissingBody = domain.NewInvalidInputError("request body is required")

// WriteService validates write requests before sending them to the API.
type WriteService interface {
	AddEntry(ctx context.Context, req *dto.NewEntryRequest) (json.RawMessage, error)
	AddAnswerSet(ctx context.Context, entryID int64, req *dto.NewAnswerSetRequest) (json.RawMessage, error)
	AddEntryTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error)
	AddRegionTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error)
	AddRegion(ctx context.Context, req *dto.NewRegionRequest) (json.RawMessage, error)
}

type writeService struct {
	writer    port.DRHWriter
	validator *validation.Validator
	logger    *zap.Logger
}

func NewWriteService(writer port.DRHWriter, logger *zap.Logger) WriteService {
	return &writeService{writer: writer, validator: validation.NewValidator(), logger: logger}
}

func (s *writeService) AddEntry(ctx context.Context, req *dto.NewEntryRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, errMissingBody
	}
	if errs := s.validator.ValidateNewEntry(req); len(errs) > 0 {
		return nil, errs
	}
	return s.writer.AddEntry(ctx, req)
}

func (s *writeService) AddAnswerSet(ctx context.Context, entryID int64, req *dto.NewAnswerSetRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, errMissingBody
	}
	if errs := s.validator.ValidateNewAnswerSet(entryID, req); len(errs) > 0 {
		return nil, errs
	}
	return s.writer.AddAnswerSet(ctx, entryID, req)
}

func (s *writeService) AddEntryTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, errMissingBody
	}
	if errs := s.validator.ValidateNewTag(req); len(errs) > 0 {
		return nil, errs
	}
	return s.writer.AddEntryTag(ctx, req)
}

func (s *writeService) AddRegionTag(ctx context.Context, req *dto.NewTagRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, errMissingBody
	}
	if errs := s.validator.ValidateNewTag(req); len(errs) > 0 {
		return nil, errs
	}
	return s.writer.AddRegionTag(ctx, req)
}

func (s *writeService) AddRegion(ctx context.Context, req *dto.NewRegionRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, errMissingBody
	}
	if errs := s.validator.ValidateNewRegion(req); len(errs) > 0 {
		return nil, errs
	}
	return s.writer.AddRegion(ctx, req)
}
