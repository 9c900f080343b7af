package service

import (
	"context"
	"encoding/json"
	"testing"

	"drh-client/internal/domain"
	"drh-client/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteService_AddEntryTag(t *testing.T) {
	writer := new(MockDRHWriter)
	req := &dto.NewTagRequest{Name: "Isis"}
	writer.On("AddEntryTag", mock.Anything, req).Return(json.RawMessage(`{"id":12}`), nil)

	svc := NewWriteService(writer, zap.NewNop())
	body, err := svc.AddEntryTag(context.Background(), req)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":12}`, string(body))
	writer.AssertExpectations(t)
}

func TestWriteService_RejectsInvalidRequests(t *testing.T) {
	writer := new(MockDRHWriter)
	svc := NewWriteService(writer, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"entry without poll", func() error {
			_, err := svc.AddEntry(ctx, &dto.NewEntryRequest{Description: "x"})
			return err
		}},
		{"answer set without answers", func() error {
			_, err := svc.AddAnswerSet(ctx, 775, &dto.NewAnswerSetRequest{QuestionID: int64Ptr(1)})
			return err
		}},
		{"blank region tag", func() error {
			_, err := svc.AddRegionTag(ctx, &dto.NewTagRequest{})
			return err
		}},
		{"region without geometry", func() error {
			_, err := svc.AddRegion(ctx, &dto.NewRegionRequest{Name: "Nile"})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verrs domain.ValidationErrors
			assert.ErrorAs(t, tt.call(), &verrs)
		})
	}
	writer.AssertNotCalled(t, "AddEntry", mock.Anything, mock.Anything)
	writer.AssertNotCalled(t, "AddAnswerSet", mock.Anything, mock.Anything, mock.Anything)
	writer.AssertNotCalled(t, "AddRegionTag", mock.Anything, mock.Anything)
	writer.AssertNotCalled(t, "AddRegion", mock.Anything, mock.Anything)
}

func TestWriteService_NilBody(t *testing.T) {
	svc := NewWriteService(new(MockDRHWriter), zap.NewNop())
	_, err := svc.AddEntry(context.Background(), nil)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestWriteService_AddAnswerSet(t *testing.T) {
	writer := new(MockDRHWriter)
	req := &dto.NewAnswerSetRequest{
		QuestionID: int64Ptr(2000),
		Answers:    []dto.NewAnswer{{TemplateAnswerID: int64Ptr(1)}},
	}
	writer.On("AddAnswerSet", mock.Anything, int64(775), req).Return(json.RawMessage(`{"id":1}`), nil)

	svc := NewWriteService(writer, zap.NewNop())
	_, err := svc.AddAnswerSet(context.Background(), 775, req)
	require.NoError(t, err)
	writer.AssertExpectations(t)
}
