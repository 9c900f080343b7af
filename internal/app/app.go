// Package app wires configuration, clients, storage and services together
// for the drh and api binaries.
package app

import (
	"context"
	"errors"
	"fmt"

	"drh-client/internal/adapter"
	"drh-client/internal/adapter/drhapi"
	"drh-client/internal/cache"
	"drh-client/internal/config"
	"drh-client/internal/database"
	"drh-client/internal/domain"
	"drh-client/internal/repository"
	"drh-client/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Options struct {
	// WithDB opens and migrates the answer-row database.
	WithDB bool
	// RequireCache fails New when Redis is configured but unreachable.
	// Otherwise the cache is skipped with a warning.
	RequireCache bool
}

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Client *drhapi.Client
	Cache  domain.DocumentCache
	DB     *sqlx.DB

	EntryCache service.EntryCacheService
	Answers    service.AnswerService
	Catalog    service.CatalogService
	Relations  service.RelationService
	Questions  service.QuestionService
	Writes     service.WriteService

	redis *redis.Client
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	a := &App{Config: cfg, Logger: logger}
	a.Client = drhapi.NewClient(cfg.DRH, logger)

	redisClient, err := cache.Connect(ctx, cfg.Redis)
	switch {
	case err != nil && opts.RequireCache:
		return nil, fmt.Errorf("connect to redis: %w", err)
	case err != nil:
		logger.Warn("Redis unavailable, continuing without cache", zap.String("address", cfg.Redis.Address), zap.Error(err))
	case redisClient != nil:
		a.redis = redisClient
		a.Cache = adapter.NewRedisDocumentCache(redisClient)
		logger.Info("Connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	var (
		repo      domain.AnswerRowRepository
		txManager domain.TransactionManager
	)
	if opts.WithDB {
		db, err := database.Open(cfg, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		if err := database.RunMigrations(db, cfg.DB.Driver, logger); err != nil {
			db.Close()
			a.Close()
			return nil, err
		}
		a.DB = db
		repo = repository.NewAnswerRowDatabaseAdapter(db)
		txManager = repository.NewTxManager(db, logger)
	}

	entryTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Entry, service.DefaultEntryCacheTTL)
	a.EntryCache = service.NewEntryCacheService(a.Client, a.Cache, entryTTL, logger)
	a.Answers = service.NewAnswerService(a.Client, a.EntryCache, repo, txManager, cfg.Batch.Concurrency, logger)
	a.Catalog = service.NewCatalogService(a.Client, logger)
	a.Relations = service.NewRelationService(a.Client, a.Cache, entryTTL, logger)
	a.Questions = service.NewQuestionService(a.Client, logger)
	a.Writes = service.NewWriteService(a.Client, logger)
	return a, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	return errors.Join(errs...)
}
