package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// SQL drivers for the sqlx backend
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SQLDB wraps a sqlx connection used for postgres, mysql and sqlite3
type SQLDB struct {
	*sqlx.DB
}

// Connect opens and pings a sqlx connection for the given driver name
// ("postgres", "mysql" or "sqlite3").
func Connect(ctx context.Context, driver, dsn string, pool PoolOptions) (*SQLDB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == "sqlite3" && (dsn == ":memory:" || dsn == "") {
		pool.MaxOpenConns = 1
		pool.MaxIdleConns = 1
		pool.ConnMaxLifetime = 0
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return &SQLDB{DB: db}, nil
}

// HealthCheck verifies the database connection is working
func (db *SQLDB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
