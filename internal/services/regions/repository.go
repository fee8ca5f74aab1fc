package regions

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/killallgit/nzwalks-api/internal/models"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
	"gorm.io/gorm"
)

// repository implements Repository on top of gorm
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new gorm-backed region repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetAll retrieves all regions
func (r *repository) GetAll(ctx context.Context) ([]models.Region, error) {
	regions := []models.Region{}
	if err := r.db.WithContext(ctx).Find(&regions).Error; err != nil {
		return nil, apperrors.DatabaseError("list regions", err)
	}
	return regions, nil
}

// GetByID retrieves a region by its identifier
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var region models.Region
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, apperrors.DatabaseError("get region", err)
	}
	return &region, nil
}

// Create inserts a new region; the identifier is assigned by the BeforeCreate hook
func (r *repository) Create(ctx context.Context, region *models.Region) (*models.Region, error) {
	created := *region
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, apperrors.DatabaseError("create region", err)
	}
	return &created, nil
}

// Update overwrites the mutable fields of an existing region
func (r *repository) Update(ctx context.Context, id uuid.UUID, region *models.Region) (*models.Region, error) {
	var existing models.Region

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}

		err := tx.Model(&existing).Updates(map[string]interface{}{
			"code":      region.Code,
			"name":      region.Name,
			"image_url": region.ImageURL,
		}).Error
		if err != nil {
			return err
		}

		existing.Code = region.Code
		existing.Name = region.Name
		existing.ImageURL = region.ImageURL
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, apperrors.DatabaseError("update region", err)
	}

	return &existing, nil
}

// Delete removes a region and returns the state it had before removal
func (r *repository) Delete(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var existing models.Region

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, apperrors.DatabaseError("delete region", err)
	}

	return &existing, nil
}
