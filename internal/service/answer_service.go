package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
	"drh-client/internal/port"
	"drh-client/internal/util"
	"drh-client/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AnswerService assembles flattened answer tables for entries.
type AnswerService interface {
	// AnswersForEntries fetches, checks and flattens every entry. Rows are
	// concatenated in the order of ids; entries that fail are reported in
	// Failures and do not affect the others.
	AnswersForEntries(ctx context.Context, ids []int64) (*domain.AnswerTable, error)
	// AnswersForEntry returns the rows of one entry or the reason it has none.
	AnswersForEntry(ctx context.Context, id int64) ([]domain.AnswerRow, error)
	// AnswersForSearch assembles the entries of one page of ListEntries.
	AnswersForSearch(ctx context.Context, params domain.ListParams) (*domain.AnswerTable, error)
	// Store persists table under a new run id and sets table.RunID.
	Store(ctx context.Context, ids []int64, table *domain.AnswerTable) (*domain.ExtractionRun, error)
	// GetRun reads a stored table back.
	GetRun(ctx context.Context, runID string) (*domain.ExtractionRun, []domain.AnswerRow, error)
}

type answerService struct {
	reader      port.DRHReader
	fetcher     port.EntryFetcher
	repo        domain.AnswerRowRepository
	txManager   domain.TransactionManager
	validator   *validation.Validator
	concurrency int
	logger      *zap.Logger
}

// NewAnswerService builds the service. fetcher is usually the entry cache in
// front of reader. repo and txManager may be nil when no database is
// configured; Store and GetRun then fail.
func NewAnswerService(
	reader port.DRHReader,
	fetcher port.EntryFetcher,
	repo domain.AnswerRowRepository,
	txManager domain.TransactionManager,
	concurrency int,
	logger *zap.Logger,
) AnswerService {
	if fetcher == nil {
		fetcher = reader
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &answerService{
		reader:      reader,
		fetcher:     fetcher,
		repo:        repo,
		txManager:   txManager,
		validator:   validation.NewValidator(),
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *answerService) AnswersForEntries(ctx context.Context, ids []int64) (*domain.AnswerTable, error) {
	if errs := s.validator.ValidateEntryIDs(ids); len(errs) > 0 {
		return nil, errs
	}
	start := time.Now()

	perEntry := make([][]domain.AnswerRow, len(ids))
	failures := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			rows, err := s.AnswersForEntry(gctx, id)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failures[i] = err
				return nil
			}
			perEntry[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("Answer assembly aborted", zap.Int("entries", len(ids)), zap.Error(err))
		return nil, err
	}

	table := &domain.AnswerTable{EntryIDs: ids, Rows: []domain.AnswerRow{}}
	for i, id := range ids {
		if failures[i] != nil {
			table.Failures = append(table.Failures, domain.EntryFailure{
				EntryID: id,
				Error:   failures[i].Error(),
				Err:     failures[i],
			})
			continue
		}
		table.Rows = append(table.Rows, perEntry[i]...)
	}

	s.logger.Info("Assembled answer table",
		zap.Int("entries", len(ids)),
		zap.Int("rows", len(table.Rows)),
		zap.Int("failures", len(table.Failures)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return table, nil
}

func (s *answerService) AnswersForEntry(ctx context.Context, id int64) ([]domain.AnswerRow, error) {
	raw, err := s.fetcher.FetchEntry(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch entry", zap.Int64("entry_id", id), zap.Error(err))
		return nil, err
	}

	var doc dto.EntryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Error("Entry document is not an object", zap.Int64("entry_id", id), zap.Error(err))
		return nil, domain.NewMalformedEntryError(id, err)
	}

	entry, err := validation.EntryFromDocument(&doc)
	if err != nil {
		var structural *domain.StructuralError
		if errors.As(err, &structural) {
			s.logger.Error("Entry document is malformed",
				zap.Int64("entry_id", id),
				zap.String("path", structural.Path),
				zap.String("field", structural.Field),
				zap.String("reason", structural.Reason),
			)
		}
		return nil, domain.NewMalformedEntryError(id, err)
	}

	rows, err := entry.Flatten()
	if err != nil {
		var unknown *domain.UnknownStatusError
		if errors.As(err, &unknown) {
			s.logger.Error("Unknown status_of_participants code",
				zap.Int64("entry_id", id),
				zap.Int("code", unknown.Code),
				zap.String("path", unknown.Path),
			)
			return nil, domain.NewError(domain.CodeUnknownStatusCode,
				fmt.Sprintf("entry %d has an unknown status_of_participants code %d", id, unknown.Code), err).
				WithContext("entry_id", id).
				WithContext("path", unknown.Path)
		}
		return nil, err
	}
	s.checkRowCount(id, rows, entry.Categories)
	return rows, nil
}

// checkRowCount compares the flattened rows with an independent count of
// answer triples and warns on a mismatch.
func (s *answerService) checkRowCount(id int64, rows []domain.AnswerRow, categories []domain.Category) bool {
	expected := domain.CountAnswerTriples(categories)
	if len(rows) != expected {
		s.logger.Warn("Flattened row count does not match answer triples",
			zap.Int64("entry_id", id),
			zap.Int("rows", len(rows)),
			zap.Int("expected_rows", expected),
		)
		return false
	}
	s.logger.Debug("Flattened entry", zap.Int64("entry_id", id), zap.Int("rows", len(rows)))
	return true
}

func (s *answerService) AnswersForSearch(ctx context.Context, params domain.ListParams) (*domain.AnswerTable, error) {
	if errs := s.validator.ValidateListParams(params); len(errs) > 0 {
		return nil, errs
	}
	page, err := s.reader.ListEntries(ctx, params)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(page.Results))
	for _, item := range page.Results {
		ids = append(ids, item.ID)
	}
	if len(ids) == 0 {
		return &domain.AnswerTable{EntryIDs: []int64{}, Rows: []domain.AnswerRow{}}, nil
	}
	return s.AnswersForEntries(ctx, ids)
}

func (s *answerService) Store(ctx context.Context, ids []int64, table *domain.AnswerTable) (*domain.ExtractionRun, error) {
	if s.repo == nil || s.txManager == nil {
		return nil, domain.NewInvalidInputError("no database configured for storing answer tables")
	}
	run := &domain.ExtractionRun{
		ID:        util.NewULID(),
		EntryIDs:  ids,
		RowCount:  len(table.Rows),
		Failures:  len(table.Failures),
		CreatedAt: time.Now().UTC(),
	}
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.SaveRun(txCtx, run); err != nil {
			return err
		}
		return s.repo.SaveRows(txCtx, run.ID, table.Rows)
	})
	if err != nil {
		s.logger.Error("Failed to store answer table", zap.String("run_id", run.ID), zap.Error(err))
		return nil, err
	}
	table.RunID = run.ID
	s.logger.Info("Stored answer table", zap.String("run_id", run.ID), zap.Int("rows", run.RowCount))
	return run, nil
}

func (s *answerService) GetRun(ctx context.Context, runID string) (*domain.ExtractionRun, []domain.AnswerRow, error) {
	if errs := s.validator.ValidateRunID(runID); len(errs) > 0 {
		return nil, nil, errs
	}
	if s.repo == nil {
		return nil, nil, domain.NewInvalidInputError("no database configured for stored answer tables")
	}
	run, err := s.repo.GetRun(ctx, runID)
	if err != nil {
		return nil, nil, err
	}
	rows, err := s.repo.GetRowsByRun(ctx, runID)
	if err != nil {
		return nil, nil, err
	}
	return run, rows, nil
}
