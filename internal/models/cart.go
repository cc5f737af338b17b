package models

import "time"

// CartItem is one row of a user's cart. The composite unique index on
// (user_id, product_id) backs the atomic upsert: at most one row may exist
// per user/product pair. The autoincrement ID doubles as insertion order.
type CartItem struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
