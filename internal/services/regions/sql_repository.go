package regions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/killallgit/nzwalks-api/internal/models"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
)

// createTableSQL is portable across postgres, mysql and sqlite
const createTableSQL = `CREATE TABLE IF NOT EXISTS regions (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	code VARCHAR(255) NOT NULL,
	name VARCHAR(255) NOT NULL,
	image_url TEXT NULL
)`

const selectColumns = `SELECT id, code, name, image_url FROM regions`

// sqlRepository implements Repository with hand-written SQL over sqlx.
// Queries use ? placeholders and are rebound for the connected driver.
type sqlRepository struct {
	db *sqlx.DB
}

// NewSQLRepository creates a new sqlx-backed region repository
func NewSQLRepository(db *sqlx.DB) Repository {
	return &sqlRepository{db: db}
}

// EnsureSchema creates the regions table when it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseMigration, "creating regions table")
	}
	return nil
}

func (r *sqlRepository) GetAll(ctx context.Context) ([]models.Region, error) {
	regions := []models.Region{}
	if err := r.db.SelectContext(ctx, &regions, selectColumns); err != nil {
		return nil, apperrors.DatabaseError("list regions", err)
	}
	return regions, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	region, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return region, nil
}

func (r *sqlRepository) Create(ctx context.Context, region *models.Region) (*models.Region, error) {
	created := *region
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO regions (id, code, name, image_url) VALUES (:id, :code, :name, :image_url)`,
		&created)
	if err != nil {
		return nil, apperrors.DatabaseError("create region", err)
	}
	return &created, nil
}

// Update checks for the row before writing: mysql reports zero affected rows
// when the new values equal the old ones.
func (r *sqlRepository) Update(ctx context.Context, id uuid.UUID, region *models.Region) (*models.Region, error) {
	var updated *models.Region

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := getByID(ctx, tx, id); err != nil {
			return err
		}

		query := tx.Rebind(`UPDATE regions SET code = ?, name = ?, image_url = ? WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, query, region.Code, region.Name, region.ImageURL, id); err != nil {
			return apperrors.DatabaseError("update region", err)
		}

		updated = &models.Region{
			ID:       id,
			Code:     region.Code,
			Name:     region.Name,
			ImageURL: region.ImageURL,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *sqlRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var existing *models.Region

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		region, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}

		query := tx.Rebind(`DELETE FROM regions WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return apperrors.DatabaseError("delete region", err)
		}

		existing = region
		return nil
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// inTx runs fn inside a transaction, committing only when fn succeeds
func (r *sqlRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseError("begin transaction", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseError("commit transaction", err)
	}
	return nil
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func getByID(ctx context.Context, q queryer, id uuid.UUID) (*models.Region, error) {
	var region models.Region
	if err := q.GetContext(ctx, &region, q.Rebind(selectColumns+` WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegionNotFound
		}
		return nil, apperrors.DatabaseError("get region", err)
	}
	return &region, nil
}
