package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"drh-client/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFS embed.FS

// oraNameInUse is raised when a CREATE targets an existing object.
const oraNameInUse = "ORA-00955"

// RunMigrations brings the answer-row schema up to date for driver.
func RunMigrations(db *sqlx.DB, driver string, logger *zap.Logger) error {
	switch driver {
	case config.DriverOracle:
		return runOracleMigrations(db, logger)
	case config.DriverSQLite, "":
		return runSQLiteMigrations(db, logger)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}

func runSQLiteMigrations(db *sqlx.DB, logger *zap.Logger) error {
	src, err := iofs.New(migrationFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("could not get database instance for migrations: %w", err)
	}
	// Closing m would close db as well, so only the source is released.
	defer src.Close()

	m, err := migrate.NewWithInstance("iofs", src, config.DriverSQLite, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Info("Database migration was run successfully",
		zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// runOracleMigrations executes every embedded .up.sql file in name order.
// go-ora runs one statement per Exec, so each file holds one statement.
// Objects that already exist are skipped.
func runOracleMigrations(db *sqlx.DB, logger *zap.Logger) error {
	files, err := OracleMigrationFiles()
	if err != nil {
		return err
	}
	for _, name := range files {
		content, err := fs.ReadFile(migrationFS, path.Join("migrations/oracle", name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), oraNameInUse) {
				logger.Debug("Migration already applied", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		logger.Info("Executed migration", zap.String("file", name))
	}
	return nil
}

// OracleMigrationFiles lists the embedded Oracle .up.sql files in apply order.
func OracleMigrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations/oracle")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
