package app

import (
	"context"
	"errors"

	"placement-match/internal/config"
	"placement-match/internal/database"
	dbpostgres "placement-match/internal/database/postgres"
	"placement-match/internal/delivery/http/handler"
	"placement-match/internal/delivery/http/routes"
	"placement-match/internal/domain/matching"
	"placement-match/internal/infrastructure/cache"
	"placement-match/internal/logger"
	"placement-match/internal/repository"
	"placement-match/internal/usecase"

	"go.uber.org/zap"
)

var errDatabaseNotConfigured = errors.New("database not configured: DB_HOST and DB_NAME are required")

type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	DB       database.DB
	Cache    *cache.Redis
	Matching *usecase.Matching
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	if !cfg.Database.Enabled() {
		return nil, errDatabaseNotConfigured
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	rdb := cache.NewRedis(cfg.Redis, log.Named("cache"))

	catalog := repository.NewCachedCatalogRepository(
		repository.NewPostgresCatalogRepository(db),
		rdb,
		cfg.Redis.CatalogTTL,
		log.Named("catalog"),
	)

	aggregator := matching.NewAggregator(
		matching.NewScorer(cfg.Matching.Policy()),
		cfg.Matching.Thresholds(),
	)

	uc := usecase.NewMatchingUsecase(
		repository.NewPostgresCandidateRepository(db),
		repository.NewPostgresRequirementRepository(db),
		catalog,
		aggregator,
		log.Named("matching"),
	)

	return &Container{Config: cfg, Logger: log, DB: db, Cache: rdb, Matching: uc}, nil
}

func (c *Container) Handlers() routes.Handlers {
	var pinger handler.Pinger
	if c.DB != nil {
		pinger = c.DB
	}
	return routes.Handlers{
		Health:      handler.NewHealthHandler(pinger),
		Match:       handler.NewMatchHandler(c.Matching),
		Candidate:   handler.NewCandidateHandler(c.Matching),
		Requirement: handler.NewRequirementHandler(c.Matching),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
