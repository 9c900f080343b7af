package domain

import (
	"context"
	"time"
)

// ExtractionRun describes one stored answer table.
type ExtractionRun struct {
	ID        string    `json:"id"`
	EntryIDs  []int64   `json:"entry_ids"`
	RowCount  int       `json:"row_count"`
	Failures  int       `json:"failures"`
	CreatedAt time.Time `json:"created_at"`
}

// AnswerRowRepository persists flattened answer tables.
type AnswerRowRepository interface {
	SaveRun(ctx context.Context, run *ExtractionRun) error
	SaveRows(ctx context.Context, runID string, rows []AnswerRow) error
	GetRun(ctx context.Context, runID string) (*ExtractionRun, error)
	GetRowsByRun(ctx context.Context, runID string) ([]AnswerRow, error)
}

// TransactionManager runs fn inside one database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
