package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CredentialService hashes and verifies passwords and issues the signed
// bearer tokens the API authenticates with. It holds no state beyond the
// signing key and the default TTL.
type CredentialService struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewCredentialService(secretKey string, tokenTTL time.Duration) *CredentialService {
	if tokenTTL <= 0 {
		tokenTTL = 72 * time.Hour
	}
	return &CredentialService{secretKey: []byte(secretKey), tokenTTL: tokenTTL}
}

func (service *CredentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (service *CredentialService) VerifyPassword(password string, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

func (service *CredentialService) IssueToken(userID string, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(service.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}

// ResolveToken returns the subject user id of a valid token, or
// ErrInvalidToken on a bad signature, wrong algorithm, malformed input, or
// expiry.
func (service *CredentialService) ResolveToken(rawToken string) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
