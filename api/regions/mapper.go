package regions

import "github.com/killallgit/nzwalks-api/internal/models"

// ToView converts a persisted region into its wire representation
func ToView(region *models.Region) RegionView {
	return RegionView{
		ID:       region.ID,
		Code:     region.Code,
		Name:     region.Name,
		ImageURL: region.ImageURL,
	}
}

// ToViews converts regions in order; the result is never nil
func ToViews(regions []models.Region) []RegionView {
	views := make([]RegionView, 0, len(regions))
	for i := range regions {
		views = append(views, ToView(&regions[i]))
	}
	return views
}

// FromAddRequest builds a region to insert; the store assigns its ID
func FromAddRequest(req AddRegionRequest) *models.Region {
	return &models.Region{
		Code:     req.Code,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	}
}

// FromUpdateRequest builds the replacement fields for an update.
// The identifier always comes from the request path.
func FromUpdateRequest(req UpdateRegionRequest) *models.Region {
	return &models.Region{
		Code:     req.Code,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	}
}
