package models

import (
	"database/sql"
	"time"
)

// ExtractionRun is a row of EXTRACTION_RUNS.
type ExtractionRun struct {
	ID        string          `db:"ID"`
	EntryIDs  JSONList[int64] `db:"ENTRY_IDS"`
	RowCount  int             `db:"ROW_COUNT"`
	Failures  int             `db:"FAILURES"`
	CreatedAt time.Time       `db:"CREATED_AT"`
}

// AnswerRow is a row of ANSWER_ROWS. Seq keeps the flattening order.
type AnswerRow struct {
	RunID                string           `db:"RUN_ID"`
	Seq                  int              `db:"SEQ"`
	EntryID              int64            `db:"ENTRY_ID"`
	EntryName            string           `db:"ENTRY_NAME"`
	QuestionSetID        int64            `db:"QUESTION_SET_ID"`
	QuestionSetName      string           `db:"QUESTION_SET_NAME"`
	QuestionGroupID      sql.Null[int64]  `db:"QUESTION_GROUP_ID"`
	QuestionGroupName    sql.Null[string] `db:"QUESTION_GROUP_NAME"`
	QuestionID           int64            `db:"QUESTION_ID"`
	QuestionName         string           `db:"QUESTION_NAME"`
	ParentQuestionID     sql.Null[int64]  `db:"PARENT_QUESTION_ID"`
	AnswerSetID          int64            `db:"ANSWER_SET_ID"`
	AnswerSetYearFrom    int64            `db:"ANSWER_SET_YEAR_FROM"`
	AnswerSetYearTo      int64            `db:"ANSWER_SET_YEAR_TO"`
	AnswerSetRegionID    int64            `db:"ANSWER_SET_REGION_ID"`
	ExpertID             sql.Null[int64]  `db:"EXPERT_ID"`
	StatusOfParticipants JSONList[int]    `db:"STATUS_OF_PARTICIPANTS"`
	AnswerID             int64            `db:"ANSWER_ID"`
	AnswerName           string           `db:"ANSWER_NAME"`
	AnswerValue          sql.Null[int64]  `db:"ANSWER_VALUE"`
	AnswerText           sql.Null[string] `db:"ANSWER_TEXT"`
	Notes                sql.Null[string] `db:"NOTES"`
}
