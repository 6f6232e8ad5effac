package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	return key
}

func TestIssueAndVerifySessionToken(t *testing.T) {
	key := testKey(t)
	userId := uuid.New().String()

	token, jti, err := IssueSessionToken(userId, "Ana", key)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, jti)

	claims, err := ParseAndVerifySign(token, &key.PublicKey)
	assert.NoError(t, err)
	assert.Equal(t, userId, claims.Sub)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, jti, claims.Jti)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseAndVerifySign_WrongKey(t *testing.T) {
	key := testKey(t)
	other := testKey(t)

	token, _, err := IssueSessionToken(uuid.New().String(), "Ana", key)
	assert.NoError(t, err)

	_, err = ParseAndVerifySign(token, &other.PublicKey)
	assert.Error(t, err)
}

func TestParseAndVerifySign_RejectsUnsignedToken(t *testing.T) {
	key := testKey(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Sub: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ParseAndVerifySign(unsigned, &key.PublicKey)
	assert.Error(t, err)
}

func TestParseAndVerifySign_ExpiredToken(t *testing.T) {
	key := testKey(t)
	now := time.Now()

	claims := &Claims{
		Sub: uuid.New().String(),
		Jti: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * SessionTTL)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-SessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	assert.NoError(t, err)

	_, err = ParseAndVerifySign(token, &key.PublicKey)
	assert.Error(t, err)
}
