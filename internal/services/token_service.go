package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenService issues and verifies stateless HS256 bearer tokens carrying a
// user identity claim. Nothing is persisted server-side; validity is
// signature verification alone. Expiry is intentionally not enforced.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService. An empty secret is a
// misconfiguration and is rejected here so it fails at startup, not per call.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret must not be empty")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue signs a token carrying the user's id and the issuance time.
func (s *TokenService) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the token's signature and returns the user id claim. It
// fails with ErrInvalidToken on malformed input, a bad signature, an
// unexpected signing method, or a missing user_id claim.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	return userID, nil
}
