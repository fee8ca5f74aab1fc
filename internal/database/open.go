package database

import (
	"context"
	"fmt"

	"github.com/killallgit/nzwalks-api/pkg/config"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
)

// Open connects to the backend selected by cfg.Driver.
// sqlite is served through gorm, postgres and mysql through sqlx.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Conn, error) {
	pool := DefaultPoolOptions()
	if cfg.MaxConnections > 0 {
		pool.MaxOpenConns = cfg.MaxConnections
	}
	if cfg.MaxIdleConnections > 0 {
		pool.MaxIdleConns = cfg.MaxIdleConnections
	}
	if cfg.ConnectionMaxLifetime > 0 {
		pool.ConnMaxLifetime = cfg.ConnectionMaxLifetime
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := InitializeWithPool(cfg.Path, cfg.LogQueries, pool)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "failed to open sqlite database")
		}
		return db, nil
	case config.DriverPostgres, config.DriverMySQL:
		db, err := Connect(ctx, cfg.Driver, cfg.DSN, pool)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, fmt.Sprintf("failed to open %s database", cfg.Driver))
		}
		return db, nil
	default:
		return nil, apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", cfg.Driver))
	}
}
