package services

import (
	"fmt"
	"log"

	"troli/internal/models"
	"troli/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token-to-user resolution.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user. A collision on either email or nickname blocks
// registration; both fields are checked together in a single OR query.
func (s *AuthService) Register(email, nickname, password string) (*models.User, error) {
	existing, err := s.userRepo.FindByEmailOrNickname(email, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing users: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrConflict
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Nickname: nickname,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates a user by email and password and returns a signed
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrUnauthenticated
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Authenticate verifies a bearer token and resolves it to a user record.
// A valid signature whose user id no longer exists is still a rejection.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("Token carried unknown user id %s: %v", userID, err)
		return nil, ErrUnauthenticated
	}
	return user, nil
}
