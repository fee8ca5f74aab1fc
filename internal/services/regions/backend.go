package regions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"

	"github.com/killallgit/nzwalks-api/internal/database"
	"github.com/killallgit/nzwalks-api/internal/models"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
)

// SchemaStatus describes the state of the regions table
type SchemaStatus struct {
	TableExists bool
	Rows        int64
}

// NewRepositoryFor returns the repository implementation matching conn
func NewRepositoryFor(conn database.Conn) (Repository, error) {
	switch c := conn.(type) {
	case *database.DB:
		return NewRepository(c.DB), nil
	case *database.SQLDB:
		return NewSQLRepository(c.DB), nil
	default:
		return nil, fmt.Errorf("unsupported database connection type %T", conn)
	}
}

// Migrate creates the regions table on the given connection
func Migrate(ctx context.Context, conn database.Conn) error {
	switch c := conn.(type) {
	case *database.DB:
		if err := c.AutoMigrate(ctx, &models.Region{}); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeDatabaseMigration, "migrating regions table")
		}
		return nil
	case *database.SQLDB:
		return EnsureSchema(ctx, c.DB)
	default:
		return fmt.Errorf("unsupported database connection type %T", conn)
	}
}

// Status reports whether the regions table exists and how many rows it holds
func Status(ctx context.Context, conn database.Conn) (SchemaStatus, error) {
	var status SchemaStatus

	switch c := conn.(type) {
	case *database.DB:
		// HasTable reports false for an unusable connection
		if err := c.HealthCheck(); err != nil {
			return status, apperrors.DatabaseError("check regions table", err)
		}
		if !c.WithContext(ctx).Migrator().HasTable(&models.Region{}) {
			return status, nil
		}
		status.TableExists = true
		if err := c.WithContext(ctx).Model(&models.Region{}).Count(&status.Rows).Error; err != nil {
			return status, apperrors.DatabaseError("count regions", err)
		}
	case *database.SQLDB:
		if err := c.GetContext(ctx, &status.Rows, `SELECT COUNT(*) FROM regions`); err != nil {
			if isMissingTable(err) {
				return SchemaStatus{}, nil
			}
			return SchemaStatus{}, apperrors.DatabaseError("count regions", err)
		}
		status.TableExists = true
	default:
		return status, fmt.Errorf("unsupported database connection type %T", conn)
	}

	return status, nil
}

// isMissingTable reports whether err is the driver's "table does not exist" error
func isMissingTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1146
	}
	// go-sqlite3 reports a missing table as a generic SQLITE_ERROR
	return strings.Contains(err.Error(), "no such table")
}
