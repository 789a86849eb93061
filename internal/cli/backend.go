package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"revenue-lab/internal/config"
	"revenue-lab/internal/storage"
	"revenue-lab/internal/storage/clickhouse"
	"revenue-lab/internal/storage/memory"
	"revenue-lab/internal/storage/migrations"
	"revenue-lab/internal/storage/postgres"
	"revenue-lab/internal/storage/sqlite"
)

// openKV connects the configured backend, running migrations for the SQL ones.
// The returned func releases the backend.
func openKV(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (storage.KVStore, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewKVStore(), noop, nil

	case config.BackendSQLite:
		db, err := sqlite.InitDB(cfg.DataDir, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using sqlite storage", zap.String("dir", cfg.DataDir))
		return sqlite.NewKVStore(db), func() {
			if err := sqlite.Close(db); err != nil {
				logger.Warn("failed to close sqlite database", zap.Error(err))
			}
		}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Debug("using postgres storage")
		return postgres.NewKVStore(pool), pool.Close, nil

	case config.BackendClickhouse:
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickhouseDSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using clickhouse storage")
		return clickhouse.NewKVStore(conn), func() {
			if err := conn.Close(); err != nil {
				logger.Warn("failed to close clickhouse connection", zap.Error(err))
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
