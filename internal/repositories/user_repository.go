package repositories

import "troli/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// FindByEmailOrNickname returns every user colliding with either value.
	// Registration rejects when the result is non-empty.
	FindByEmailOrNickname(email, nickname string) ([]models.User, error)
}
