package repositories

import "troli/internal/models"

// CartRepository defines the interface for cart data access.
//
// Upsert overwrites the quantity when a row already exists for the
// (userID, productID) pair and must be atomic under concurrent calls on the
// same key. Remove is idempotent: removing an absent row is not an error.
type CartRepository interface {
	ListByUser(userID string) ([]models.CartItem, error)
	Upsert(userID, productID string, quantity int) error
	Remove(userID, productID string) error
}
