package repositories

import (
	"fmt"
	"time"
	"troli/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// ListByUser retrieves all cart rows for a user in insertion order.
func (r *GORMCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart for user %s: %w", userID, err)
	}
	return items, nil
}

// Upsert inserts a cart row or overwrites the quantity of an existing one.
// The single INSERT ... ON CONFLICT statement rides on the composite unique
// index, so two concurrent upserts on the same key can never leave two rows.
func (r *GORMCartRepository) Upsert(userID, productID string, quantity int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item (%s, %s): %w", userID, productID, err)
	}
	return nil
}

// Remove deletes the matching cart row if present. A zero-row delete is not
// an error: the remove contract is idempotent.
func (r *GORMCartRepository) Remove(userID, productID string) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item (%s, %s): %w", userID, productID, res.Error)
	}
	return nil
}
