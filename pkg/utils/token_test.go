package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	identity := Identity{
		ID:    uuid.New(),
		Name:  "Dept Head",
		Email: "admin@itu.edu.pk",
		Role:  "ADMIN",
	}

	token, err := CreateToken("secret", identity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := CreateToken("secret", Identity{ID: uuid.New(), Role: "USER"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := CreateToken("secret", Identity{ID: uuid.New(), Role: "USER"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
