package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHash_EncodesParamsAndSalt(t *testing.T) {
	hash, err := GenerateHash("secret-pass")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.NotContains(t, hash, "secret-pass")
}

func TestGenerateHash_SaltsEveryCall(t *testing.T) {
	first, err := GenerateHash("secret-pass")
	assert.NoError(t, err)
	second, err := GenerateHash("secret-pass")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyHash(t *testing.T) {
	hash, err := GenerateHash("secret-pass")
	assert.NoError(t, err)

	match, err := VerifyHash(hash, "secret-pass")
	assert.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyHash(hash, "wrong-pass")
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyHash_RejectsMalformedEncoding(t *testing.T) {
	_, err := VerifyHash("not-an-argon2-hash", "whatever")
	assert.Error(t, err)

	_, err = VerifyHash("$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", "whatever")
	assert.Error(t, err)
}
