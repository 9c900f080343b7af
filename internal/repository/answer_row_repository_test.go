package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"drh-client/internal/config"
	"drh-client/internal/database"
	"drh-client/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var rowColumns = []string{
	"RUN_ID", "SEQ", "ENTRY_ID", "ENTRY_NAME", "QUESTION_SET_ID", "QUESTION_SET_NAME",
	"QUESTION_GROUP_ID", "QUESTION_GROUP_NAME", "QUESTION_ID", "QUESTION_NAME", "PARENT_QUESTION_ID",
	"ANSWER_SET_ID", "ANSWER_SET_YEAR_FROM", "ANSWER_SET_YEAR_TO", "ANSWER_SET_REGION_ID", "EXPERT_ID",
	"STATUS_OF_PARTICIPANTS", "ANSWER_ID", "ANSWER_NAME", "ANSWER_VALUE", "ANSWER_TEXT", "NOTES",
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string  { return &s }

func sampleRows() []domain.AnswerRow {
	return []domain.AnswerRow{
		{
			EntryID: 775, EntryName: "Ancient Egypt", CategoryID: 1, CategoryName: "Religious Group",
			GroupID: int64Ptr(10), GroupName: strPtr("Beliefs"), QuestionID: 2000, QuestionName: "Is there a high god?",
			AnswerSetID: 500, YearFrom: -3000, YearTo: -2000, RegionID: 7, ExpertID: int64Ptr(3),
			StatusOfParticipants: []int{0, 2}, StatusOfParticipantsLabels: []string{"Elite", "Non-elite (common people, general populace)"},
			AnswerID: 1, AnswerName: "Yes", AnswerValue: int64Ptr(1), AnswerText: "", Notes: "checked",
		},
		{
			EntryID: 775, EntryName: "Ancient Egypt", CategoryID: 1, CategoryName: "Religious Group",
			QuestionID: 2001, QuestionName: "Is it anthropomorphic?", ParentQuestionID: int64Ptr(2000),
			AnswerSetID: 501, YearFrom: -3000, YearTo: -2000, RegionID: 7,
			StatusOfParticipants: []int{}, StatusOfParticipantsLabels: []string{},
			AnswerID: 2, AnswerName: "Field doesn't know", AnswerText: "unclear",
		},
	}
}

func TestSaveRun(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)
	run := &domain.ExtractionRun{ID: "01J0000000000000000000000A", EntryIDs: []int64{775, 42}, RowCount: 2, Failures: 1, CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO EXTRACTION_RUNS`)).
		WithArgs(run.ID, "[775,42]", 2, 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRun(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRows(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)
	rows := sampleRows()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ANSWER_ROWS`)).
		WithArgs("run1", 0, int64(775), "Ancient Egypt", int64(1), "Religious Group",
			int64(10), "Beliefs", int64(2000), "Is there a high god?", nil,
			int64(500), int64(-3000), int64(-2000), int64(7), int64(3), "[0,2]",
			int64(1), "Yes", int64(1), nil, "checked").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ANSWER_ROWS`)).
		WithArgs("run1", 1, int64(775), "Ancient Egypt", int64(1), "Religious Group",
			nil, nil, int64(2001), "Is it anthropomorphic?", int64(2000),
			int64(501), int64(-3000), int64(-2000), int64(7), nil, "[]",
			int64(2), "Field doesn't know", nil, "unclear", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRows(context.Background(), "run1", rows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRows_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)

	dbErr := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ANSWER_ROWS`)).WillReturnError(dbErr)

	err := repo.SaveRows(context.Background(), "run1", sampleRows())
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRun(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"ID", "ENTRY_IDS", "ROW_COUNT", "FAILURES", "CREATED_AT"}).
		AddRow("run1", "[775,42]", 12, 0, created)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ID, ENTRY_IDS, ROW_COUNT, FAILURES, CREATED_AT FROM EXTRACTION_RUNS WHERE ID = ?`)).
		WithArgs("run1").
		WillReturnRows(rows)

	run, err := repo.GetRun(context.Background(), "run1")
	require.NoError(t, err)
	assert.Equal(t, &domain.ExtractionRun{ID: "run1", EntryIDs: []int64{775, 42}, RowCount: 12, CreatedAt: created}, run)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRun_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM EXTRACTION_RUNS`)).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	run, err := repo.GetRun(context.Background(), "missing")
	assert.Nil(t, run)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRowsByRun(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)

	rows := sqlmock.NewRows(rowColumns).
		AddRow("run1", 0, 775, "Ancient Egypt", 1, "Religious Group", 10, "Beliefs", 2000, "Is there a high god?", nil,
			500, -3000, -2000, 7, 3, "[0,2]", 1, "Yes", 1, nil, "checked").
		AddRow("run1", 1, 775, "Ancient Egypt", 1, "Religious Group", nil, nil, 2001, "Is it anthropomorphic?", 2000,
			501, -3000, -2000, 7, nil, "[]", 2, "Field doesn't know", nil, "unclear", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM ANSWER_ROWS WHERE RUN_ID = ? ORDER BY SEQ`)).
		WithArgs("run1").
		WillReturnRows(rows)

	got, err := repo.GetRowsByRun(context.Background(), "run1")
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRowsByRun_UnknownStoredStatus(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAnswerRowDatabaseAdapter(db)

	rows := sqlmock.NewRows(rowColumns).
		AddRow("run1", 0, 775, "Ancient Egypt", 1, "Religious Group", nil, nil, 2000, "Q", nil,
			500, 0, 1, 7, nil, "[9]", 1, "Yes", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM ANSWER_ROWS`)).WithArgs("run1").WillReturnRows(rows)

	_, err := repo.GetRowsByRun(context.Background(), "run1")
	var statusErr *domain.UnknownStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 9, statusErr.Code)
}

func TestAnswerRowRepository_SQLiteRoundTrip(t *testing.T) {
	logger := zap.NewNop()
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "drh.db")}}
	db, err := database.Open(cfg, logger)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.RunMigrations(db, cfg.DB.Driver, logger))

	repo := NewAnswerRowDatabaseAdapter(db)
	tm := NewTxManager(db, logger)
	ctx := context.Background()
	run := &domain.ExtractionRun{ID: "01J0000000000000000000000B", EntryIDs: []int64{775}, RowCount: 2, CreatedAt: time.Now().UTC().Truncate(time.Second)}

	err = tm.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.SaveRun(txCtx, run); err != nil {
			return err
		}
		return repo.SaveRows(txCtx, run.ID, sampleRows())
	})
	require.NoError(t, err)

	gotRun, err := repo.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.EntryIDs, gotRun.EntryIDs)
	assert.Equal(t, 2, gotRun.RowCount)
	assert.True(t, run.CreatedAt.Equal(gotRun.CreatedAt))

	gotRows, err := repo.GetRowsByRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), gotRows)

	// Empty free text is stored as NULL and read back as "".
	var nullTexts, nullNotes int
	require.NoError(t, db.Get(&nullTexts, `SELECT COUNT(*) FROM ANSWER_ROWS WHERE ANSWER_TEXT IS NULL`))
	require.NoError(t, db.Get(&nullNotes, `SELECT COUNT(*) FROM ANSWER_ROWS WHERE NOTES IS NULL`))
	assert.Equal(t, 1, nullTexts)
	assert.Equal(t, 1, nullNotes)
}
