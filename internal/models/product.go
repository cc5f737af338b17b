package models

import "gorm.io/gorm"

// Product represents a catalog item. Cart rows reference products by id but
// do not own them.
type Product struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Category     string  `json:"category" gorm:"index;type:varchar(100)" validate:"omitempty,max=100"`
	ThumbnailURL string  `json:"thumbnailUrl" validate:"omitempty,url"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
