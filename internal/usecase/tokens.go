package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT claims carrying the authenticated student ID.
type Claims struct {
	StudentID uuid.UUID `json:"student_id"`
	jwt.RegisteredClaims
}

// TokenServiceConfig holds configuration for session token issuance.
type TokenServiceConfig struct {
	Secret          string
	ExpirationHours int
}

// TokenService issues and validates HS256-signed session tokens.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenService creates a new token service with the given configuration.
func NewTokenService(config TokenServiceConfig) *TokenService {
	hours := config.ExpirationHours
	if hours <= 0 {
		hours = 24
	}

	return &TokenService{
		secret:     []byte(config.Secret),
		expiration: time.Duration(hours) * time.Hour,
	}
}

// Issue generates a signed token for the given student ID.
func (s *TokenService) Issue(studentID uuid.UUID) (string, error) {
	now := time.Now()

	claims := &Claims{
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses a token string and returns its claims if the signature
// and registered claims check out.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
