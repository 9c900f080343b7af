package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"drh-client/internal/domain"
	"drh-client/internal/repository/models"
	"drh-client/internal/util"
)

const (
	insertRunQuery = `INSERT INTO EXTRACTION_RUNS (ID, ENTRY_IDS, ROW_COUNT, FAILURES, CREATED_AT)
	          VALUES (:ID, :ENTRY_IDS, :ROW_COUNT, :FAILURES, :CREATED_AT)`

	insertRowQuery = `INSERT INTO ANSWER_ROWS (RUN_ID, SEQ, ENTRY_ID, ENTRY_NAME, QUESTION_SET_ID, QUESTION_SET_NAME,
	          QUESTION_GROUP_ID, QUESTION_GROUP_NAME, QUESTION_ID, QUESTION_NAME, PARENT_QUESTION_ID, ANSWER_SET_ID,
	          ANSWER_SET_YEAR_FROM, ANSWER_SET_YEAR_TO, ANSWER_SET_REGION_ID, EXPERT_ID, STATUS_OF_PARTICIPANTS,
	          ANSWER_ID, ANSWER_NAME, ANSWER_VALUE, ANSWER_TEXT, NOTES)
	          VALUES (:RUN_ID, :SEQ, :ENTRY_ID, :ENTRY_NAME, :QUESTION_SET_ID, :QUESTION_SET_NAME,
	          :QUESTION_GROUP_ID, :QUESTION_GROUP_NAME, :QUESTION_ID, :QUESTION_NAME, :PARENT_QUESTION_ID, :ANSWER_SET_ID,
	          :ANSWER_SET_YEAR_FROM, :ANSWER_SET_YEAR_TO, :ANSWER_SET_REGION_ID, :EXPERT_ID, :STATUS_OF_PARTICIPANTS,
	          :ANSWER_ID, :ANSWER_NAME, :ANSWER_VALUE, :ANSWER_TEXT, :NOTES)`

	selectRunQuery = `SELECT ID, ENTRY_IDS, ROW_COUNT, FAILURES, CREATED_AT FROM EXTRACTION_RUNS WHERE ID = ?`

	selectRowsQuery = `SELECT RUN_ID, SEQ, ENTRY_ID, ENTRY_NAME, QUESTION_SET_ID, QUESTION_SET_NAME,
	          QUESTION_GROUP_ID, QUESTION_GROUP_NAME, QUESTION_ID, QUESTION_NAME, PARENT_QUESTION_ID, ANSWER_SET_ID,
	          ANSWER_SET_YEAR_FROM, ANSWER_SET_YEAR_TO, ANSWER_SET_REGION_ID, EXPERT_ID, STATUS_OF_PARTICIPANTS,
	          ANSWER_ID, ANSWER_NAME, ANSWER_VALUE, ANSWER_TEXT, NOTES
	          FROM ANSWER_ROWS WHERE RUN_ID = ? ORDER BY SEQ`
)

// AnswerRowDatabaseAdapter stores answer tables through sqlx. Every method
// joins the transaction carried by ctx, if any.
type AnswerRowDatabaseAdapter struct {
	db DBTX
}

func NewAnswerRowDatabaseAdapter(db DBTX) domain.AnswerRowRepository {
	return &AnswerRowDatabaseAdapter{db: db}
}

func (r *AnswerRowDatabaseAdapter) SaveRun(ctx context.Context, run *domain.ExtractionRun) error {
	exec := executor(ctx, r.db)
	if _, err := exec.NamedExecContext(ctx, insertRunQuery, toModelRun(run)); err != nil {
		return fmt.Errorf("failed to save extraction run %s: %w", run.ID, err)
	}
	return nil
}

// SaveRows inserts rows under runID, numbering them in slice order.
func (r *AnswerRowDatabaseAdapter) SaveRows(ctx context.Context, runID string, rows []domain.AnswerRow) error {
	exec := executor(ctx, r.db)
	for i := range rows {
		model := toModelAnswerRow(runID, i, &rows[i])
		if _, err := exec.NamedExecContext(ctx, insertRowQuery, model); err != nil {
			return fmt.Errorf("failed to save answer row %d of run %s: %w", i, runID, err)
		}
	}
	return nil
}

func (r *AnswerRowDatabaseAdapter) GetRun(ctx context.Context, runID string) (*domain.ExtractionRun, error) {
	exec := executor(ctx, r.db)
	var model models.ExtractionRun
	if err := exec.GetContext(ctx, &model, exec.Rebind(selectRunQuery), runID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("extraction run not found with ID: %s", runID)).
				WithContext("run_id", runID)
		}
		return nil, fmt.Errorf("failed to get extraction run %s: %w", runID, err)
	}
	return toDomainRun(&model), nil
}

func (r *AnswerRowDatabaseAdapter) GetRowsByRun(ctx context.Context, runID string) ([]domain.AnswerRow, error) {
	exec := executor(ctx, r.db)
	var rows []models.AnswerRow
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(selectRowsQuery), runID); err != nil {
		return nil, fmt.Errorf("failed to get answer rows of run %s: %w", runID, err)
	}

	result := make([]domain.AnswerRow, 0, len(rows))
	for i := range rows {
		row, err := toDomainAnswerRow(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, nil
}

func toModelRun(run *domain.ExtractionRun) *models.ExtractionRun {
	return &models.ExtractionRun{
		ID:        run.ID,
		EntryIDs:  models.JSONList[int64](run.EntryIDs),
		RowCount:  run.RowCount,
		Failures:  run.Failures,
		CreatedAt: run.CreatedAt,
	}
}

func toDomainRun(m *models.ExtractionRun) *domain.ExtractionRun {
	return &domain.ExtractionRun{
		ID:        m.ID,
		EntryIDs:  []int64(m.EntryIDs),
		RowCount:  m.RowCount,
		Failures:  m.Failures,
		CreatedAt: m.CreatedAt,
	}
}

func toModelAnswerRow(runID string, seq int, row *domain.AnswerRow) *models.AnswerRow {
	return &models.AnswerRow{
		RunID:                runID,
		Seq:                  seq,
		EntryID:              row.EntryID,
		EntryName:            row.EntryName,
		QuestionSetID:        row.CategoryID,
		QuestionSetName:      row.CategoryName,
		QuestionGroupID:      util.NullFromPtr(row.GroupID),
		QuestionGroupName:    util.NullFromPtr(row.GroupName),
		QuestionID:           row.QuestionID,
		QuestionName:         row.QuestionName,
		ParentQuestionID:     util.NullFromPtr(row.ParentQuestionID),
		AnswerSetID:          row.AnswerSetID,
		AnswerSetYearFrom:    row.YearFrom,
		AnswerSetYearTo:      row.YearTo,
		AnswerSetRegionID:    row.RegionID,
		ExpertID:             util.NullFromPtr(row.ExpertID),
		StatusOfParticipants: models.JSONList[int](row.StatusOfParticipants),
		AnswerID:             row.AnswerID,
		AnswerName:           row.AnswerName,
		AnswerValue:          util.NullFromPtr(row.AnswerValue),
		AnswerText:           util.NullIfEmpty(row.AnswerText),
		Notes:                util.NullIfEmpty(row.Notes),
	}
}

// toDomainAnswerRow rebuilds the status labels from the stored codes.
func toDomainAnswerRow(m *models.AnswerRow) (domain.AnswerRow, error) {
	labels, err := domain.DecodeStatusOfParticipants(m.StatusOfParticipants)
	if err != nil {
		return domain.AnswerRow{}, fmt.Errorf("answer row %d of run %s: %w", m.Seq, m.RunID, err)
	}
	return domain.AnswerRow{
		EntryID:                    m.EntryID,
		EntryName:                  m.EntryName,
		CategoryID:                 m.QuestionSetID,
		CategoryName:               m.QuestionSetName,
		GroupID:                    util.PtrFromNull(m.QuestionGroupID),
		GroupName:                  util.PtrFromNull(m.QuestionGroupName),
		QuestionID:                 m.QuestionID,
		QuestionName:               m.QuestionName,
		ParentQuestionID:           util.PtrFromNull(m.ParentQuestionID),
		AnswerSetID:                m.AnswerSetID,
		YearFrom:                   m.AnswerSetYearFrom,
		YearTo:                     m.AnswerSetYearTo,
		RegionID:                   m.AnswerSetRegionID,
		ExpertID:                   util.PtrFromNull(m.ExpertID),
		StatusOfParticipants:       []int(m.StatusOfParticipants),
		StatusOfParticipantsLabels: labels,
		AnswerID:                   m.AnswerID,
		AnswerName:                 m.AnswerName,
		AnswerValue:                util.PtrFromNull(m.AnswerValue),
		AnswerText:                 m.AnswerText.V,
		Notes:                      m.Notes.V,
	}, nil
}
