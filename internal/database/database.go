package database

import (
	"fmt"

	"drh-client/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers "sqlite"
)

func init() {
	// go-ora speaks :name placeholders; modernc sqlite speaks ?.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Open connects to the database selected by cfg.DB.Driver.
func Open(cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	switch cfg.DB.Driver {
	case config.DriverOracle:
		return NewSQLXOracleDB(cfg.GetDSN(), logger)
	case config.DriverSQLite, "":
		return NewSQLiteDB(cfg.GetDSN(), logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func NewSQLXOracleDB(dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverOracle, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}
	logger.Info("Successfully connected to Oracle database")
	return db, nil
}

// NewSQLiteDB opens an embedded database file. SQLite allows a single
// writer, so the pool is capped at one connection.
func NewSQLiteDB(dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	logger.Info("Successfully opened SQLite database", zap.String("dsn", dsn))
	return db, nil
}
