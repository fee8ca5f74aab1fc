package regions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/nzwalks-api/api/types"
	"github.com/killallgit/nzwalks-api/internal/services/regions"
)

// ListRegions returns every region
// @Summary      List regions
// @Description  Retrieve all regions in the order the store returns them
// @Tags         regions
// @Produce      json
// @Success      200 {array}  RegionView "All regions"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/regions [get]
func ListRegions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := deps.RegionRepository.GetAll(c.Request.Context())
		if err != nil {
			types.SendError(c, deps.Logger, "Failed to retrieve regions", err)
			return
		}

		types.SendSuccess(c, ToViews(found))
	}
}

// GetRegion returns a single region
// @Summary      Get region by ID
// @Description  Retrieve one region by its identifier
// @Tags         regions
// @Produce      json
// @Param        id path string true "Region ID" format(uuid)
// @Success      200 {object} RegionView "Region"
// @Failure      400 {object} types.ErrorResponse "Invalid region ID"
// @Failure      404 "Region not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/regions/{id} [get]
func GetRegion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUUIDParam(c, "id")
		if !ok {
			return // Error response already sent by utility
		}

		region, err := deps.RegionRepository.GetByID(c.Request.Context(), id)
		if err != nil {
			respondLookupError(c, deps, "Failed to retrieve region", err)
			return
		}

		types.SendSuccess(c, ToView(region))
	}
}

// CreateRegion creates a new region
// @Summary      Create region
// @Description  Create a region; the server assigns its identifier
// @Tags         regions
// @Accept       json
// @Produce      json
// @Param        region body AddRegionRequest true "Region data"
// @Success      201 {object} RegionView "Created region"
// @Header       201 {string} Location "URL of the created region"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/regions [post]
func CreateRegion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddRegionRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		created, err := deps.RegionRepository.Create(c.Request.Context(), FromAddRequest(req))
		if err != nil {
			types.SendError(c, deps.Logger, "Failed to create region", err)
			return
		}

		view := ToView(created)
		c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+view.ID.String())
		types.SendCreated(c, view)
	}
}

// UpdateRegion replaces a region's code, name and image URL
// @Summary      Update region
// @Description  Replace all mutable fields of an existing region
// @Tags         regions
// @Accept       json
// @Produce      json
// @Param        id path string true "Region ID" format(uuid)
// @Param        region body UpdateRegionRequest true "Replacement region data"
// @Success      200 {object} RegionView "Updated region"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 "Region not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/regions/{id} [put]
func UpdateRegion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUUIDParam(c, "id")
		if !ok {
			return // Error response already sent by utility
		}

		var req UpdateRegionRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		updated, err := deps.RegionRepository.Update(c.Request.Context(), id, FromUpdateRequest(req))
		if err != nil {
			respondLookupError(c, deps, "Failed to update region", err)
			return
		}

		types.SendSuccess(c, ToView(updated))
	}
}

// DeleteRegion removes a region and returns its final state
// @Summary      Delete region
// @Description  Delete a region by its identifier and return the removed region
// @Tags         regions
// @Produce      json
// @Param        id path string true "Region ID" format(uuid)
// @Success      200 {object} RegionView "Removed region"
// @Failure      400 {object} types.ErrorResponse "Invalid region ID"
// @Failure      404 "Region not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/regions/{id} [delete]
func DeleteRegion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUUIDParam(c, "id")
		if !ok {
			return // Error response already sent by utility
		}

		deleted, err := deps.RegionRepository.Delete(c.Request.Context(), id)
		if err != nil {
			respondLookupError(c, deps, "Failed to delete region", err)
			return
		}

		types.SendSuccess(c, ToView(deleted))
	}
}

// respondLookupError answers 404 with an empty body for a missing region
// and falls back to the standard error response otherwise.
func respondLookupError(c *gin.Context, deps *types.Dependencies, message string, err error) {
	if errors.Is(err, regions.ErrRegionNotFound) {
		types.SendStatus(c, http.StatusNotFound)
		return
	}
	types.SendError(c, deps.Logger, message, err)
}
