package regions

import "github.com/google/uuid"

// RegionView is the wire representation of a region
type RegionView struct {
	ID       uuid.UUID `json:"id" example:"f7248fc3-8ba6-4c14-9d1f-3f4b8d5f8e2c"`
	Code     string    `json:"code" example:"NZ-WGN"`
	Name     string    `json:"name" example:"Wellington"`
	ImageURL *string   `json:"imageUrl" example:"https://example.com/wellington.jpg"`
}

// AddRegionRequest is the request body for creating a region
type AddRegionRequest struct {
	Code     string  `json:"code" binding:"required" example:"NZ-WGN"`
	Name     string  `json:"name" binding:"required" example:"Wellington"`
	ImageURL *string `json:"imageUrl" example:"https://example.com/wellington.jpg"`
}

// UpdateRegionRequest is the request body for replacing a region's fields
type UpdateRegionRequest struct {
	Code     string  `json:"code" binding:"required" example:"NZ-WGN"`
	Name     string  `json:"name" binding:"required" example:"Wellington"`
	ImageURL *string `json:"imageUrl" example:"https://example.com/wellington.jpg"`
}
