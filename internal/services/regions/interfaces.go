package regions

import (
	"context"

	"github.com/google/uuid"
	"github.com/killallgit/nzwalks-api/internal/models"
)

// Repository defines the interface for region data access.
// Methods that address a single region return ErrRegionNotFound when no
// region has the given identifier.
type Repository interface {
	// GetAll returns every persisted region in store order
	GetAll(ctx context.Context) ([]models.Region, error)

	// GetByID returns the region with the given identifier
	GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error)

	// Create inserts a region, assigning its identifier
	Create(ctx context.Context, region *models.Region) (*models.Region, error)

	// Update replaces code, name and image URL of the region with the given identifier
	Update(ctx context.Context, id uuid.UUID, region *models.Region) (*models.Region, error)

	// Delete removes the region with the given identifier and returns its final state
	Delete(ctx context.Context, id uuid.UUID) (*models.Region, error)
}
