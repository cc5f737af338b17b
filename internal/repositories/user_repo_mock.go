package repositories

import (
	"fmt"
	"sync"
	"troli/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Nickname == user.Nickname {
			return fmt.Errorf("user with email %s or nickname %s already exists", user.Email, user.Nickname)
		}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return &user, nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// FindByEmailOrNickname returns all users colliding with either field.
func (r *MockUserRepository) FindByEmailOrNickname(email, nickname string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.User
	for _, u := range r.users {
		if u.Email == email || u.Nickname == nickname {
			matches = append(matches, u)
		}
	}
	return matches, nil
}
