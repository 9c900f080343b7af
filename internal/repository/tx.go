package repository

import (
	"context"
	"database/sql"
	"fmt"

	"drh-client/internal/domain"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DBTX is the subset of *sqlx.DB and *sqlx.Tx the repositories use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

type txKey struct{}

// executor returns the transaction carried by ctx, or db outside one.
func executor(ctx context.Context, db DBTX) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// TxManager runs answer-row writes in one database transaction so a stored
// run never exists without its rows.
type TxManager struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTxManager(db *sqlx.DB, logger *zap.Logger) domain.TransactionManager {
	return &TxManager{db: db, logger: logger}
}

// WithTransaction commits when fn returns nil and rolls back otherwise,
// including on panic. Calls nested inside a running transaction join it.
func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				m.logger.Error("Rollback after panic failed", zap.Error(rbErr))
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.logger.Error("Rollback failed", zap.Error(rbErr), zap.NamedError("cause", err))
			return fmt.Errorf("rollback: %v (after: %w)", rbErr, err)
		}
		m.logger.Debug("Transaction rolled back", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
