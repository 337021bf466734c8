package utils

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtMu  sync.RWMutex
	jwtKey []byte
	jwtTTL = 3 * time.Hour
)

// ConfigureJWT overrides the signing key and token lifetime. Without it the
// key is read from JWT_SECRET on first use.
func ConfigureJWT(secret string, ttl time.Duration) {
	jwtMu.Lock()
	defer jwtMu.Unlock()
	jwtKey = []byte(secret)
	if ttl > 0 {
		jwtTTL = ttl
	}
}

func signingKey() ([]byte, time.Duration) {
	jwtMu.RLock()
	defer jwtMu.RUnlock()
	if len(jwtKey) == 0 {
		return []byte(os.Getenv("JWT_SECRET")), jwtTTL
	}
	return jwtKey, jwtTTL
}

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

func CreateToken(userID uuid.UUID, email, name, role string) (string, error) {
	key, ttl := signingKey()
	if len(key) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func ValidateToken(tokenString string) (*Claims, error) {
	key, _ := signingKey()
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
