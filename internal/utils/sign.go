package utils

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionTTL = 24 * time.Hour

type Claims struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
	Jti  string `json:"jti"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs an RS256 session token for a validated user and
// returns the token plus its jti for the server-side session record.
func IssueSessionToken(userId, name string, privateKey *rsa.PrivateKey) (string, string, error) {
	now := time.Now()
	jti := uuid.New().String()

	claims := &Claims{
		Sub:  userId,
		Name: name,
		Jti:  jti,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	if err != nil {
		return "", "", err
	}

	return token, jti, nil
}

func ParseAndVerifySign(token string, pubKey *rsa.PublicKey) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
