package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placement-match/internal/config"
	"placement-match/internal/database/migration"
	dbpostgres "placement-match/internal/database/postgres"
	"placement-match/internal/database/seeder"
	"placement-match/internal/infrastructure/cache"
	"placement-match/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const storeTimeout = 2 * time.Minute

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations to Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd, func(ctx context.Context, pool *dbpostgres.Pool, _ config.Config, lg *zap.Logger) error {
				return migration.Runner{Logger: lg}.Run(ctx, pool.SQLDB())
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default course catalog",
		Long:  "Applies pending migrations, inserts the default course catalog and drops the cached catalog listing.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd, func(ctx context.Context, pool *dbpostgres.Pool, cfg config.Config, lg *zap.Logger) error {
				if !skipMigrate {
					if err := (migration.Runner{Logger: lg}).Run(ctx, pool.SQLDB()); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
				}
				if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: lg}).Run(ctx, pool); err != nil {
					return err
				}

				rdb := cache.NewRedis(cfg.Redis, lg.Named("cache"))
				defer func() { _ = rdb.Close() }()
				catalog := repository.NewCachedCatalogRepository(repository.NewPostgresCatalogRepository(pool), rdb, cfg.Redis.CatalogTTL, lg)
				if err := catalog.Invalidate(ctx); err != nil {
					lg.Warn("catalog cache invalidation failed", zap.Error(err))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations before seeding")
	return cmd
}

func withPool(cmd *cobra.Command, fn func(context.Context, *dbpostgres.Pool, config.Config, *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled() {
		return errors.New("database not configured: set DB_HOST and DB_NAME")
	}

	lg, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
	defer cancel()

	pool, err := dbpostgres.Connect(ctx, cfg.Database, lg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, pool, cfg, lg)
}
