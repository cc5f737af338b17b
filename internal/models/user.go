package models

import "gorm.io/gorm"

// User represents a registered shopper. The password column holds a bcrypt
// hash, never the plaintext secret.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Nickname   string `json:"nickname" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Password   string `gorm:"type:varchar(255)" validate:"required"` // No json tag for security
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
