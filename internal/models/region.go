package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Region is a named geographic area with a short code and an optional image
type Region struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:varchar(36);primaryKey"`
	Code     string    `json:"code" db:"code" gorm:"size:255;not null"`
	Name     string    `json:"name" db:"name" gorm:"size:255;not null"`
	ImageURL *string   `json:"imageUrl" db:"image_url" gorm:"column:image_url"`
}

// BeforeCreate assigns the identifier before a new region is inserted
func (r *Region) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Region model
func (Region) TableName() string {
	return "regions"
}
