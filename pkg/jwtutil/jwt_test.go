package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTL(t *testing.T) {
	assert.Equal(t, 12*time.Hour, NewManager("test-secret", 12*time.Hour).TTL())
}

func TestSignAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Sign("user-123")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Sign("user-123")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := m.ParseAndValidate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
