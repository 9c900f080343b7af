package service

import (
	"context"

	"drh-client/internal/domain"
	"drh-client/internal/port"
	"drh-client/internal/validation"

	"go.uber.org/zap"
)

// QuestionService flattens the entries-by-question endpoint.
type QuestionService interface {
	EntriesByQuestion(ctx context.Context, questionName string) ([]domain.QuestionAnswerRow, error)
}

type questionService struct {
	reader    port.DRHReader
	validator *validation.Validator
	logger    *zap.Logger
}

func NewQuestionService(reader port.DRHReader, logger *zap.Logger) QuestionService {
	return &questionService{reader: reader, validator: validation.NewValidator(), logger: logger}
}

func (s *questionService) EntriesByQuestion(ctx context.Context, questionName string) ([]domain.QuestionAnswerRow, error) {
	if errs := s.validator.ValidateQuestionName(questionName); len(errs) > 0 {
		return nil, errs
	}
	entries, err := s.reader.EntriesByQuestion(ctx, questionName)
	if err != nil {
		return nil, err
	}
	rows := toQuestionAnswerRows(entries)
	s.logger.Debug("Flattened entries by question",
		zap.String("question_name", questionName),
		zap.Int("entries", len(entries)),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}
