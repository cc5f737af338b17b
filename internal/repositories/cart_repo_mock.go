package repositories

import (
	"sync"
	"time"
	"troli/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Rows are kept in a slice so ListByUser preserves insertion order, matching
// the GORM implementation's id ordering.
type MockCartRepository struct {
	items  []models.CartItem
	nextID uint
	mu     sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{nextID: 1}
}

// ListByUser returns the user's cart rows in insertion order.
func (r *MockCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.CartItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Upsert overwrites the quantity of an existing row or appends a new one.
func (r *MockCartRepository) Upsert(userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			r.items[i].Quantity = quantity
			r.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	now := time.Now()
	r.items = append(r.items, models.CartItem{
		ID:        r.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	r.nextID++
	return nil
}

// Remove deletes the matching row if present; absent rows are a no-op.
func (r *MockCartRepository) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
