package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	m, err := NewJWTManager("test-secret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, m.TTL())

	token, err := m.GenerateJWT("user-1")
	require.NoError(t, err)

	id, err := m.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestJWT_Expired(t *testing.T) {
	m, err := NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateJWT("user-1")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = m.ParseJWT(token)
	assert.NoError(t, err)

	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = m.ParseJWT(token)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	a, _ := NewJWTManager("secret-a", time.Hour)
	b, _ := NewJWTManager("secret-b", time.Hour)

	token, err := a.GenerateJWT("user-1")
	require.NoError(t, err)
	_, err = b.ParseJWT(token)
	assert.Error(t, err)
}

func TestJWT_RejectsOtherAlgorithmsAndMissingClaims(t *testing.T) {
	m, _ := NewJWTManager("test-secret", time.Hour)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.ParseJWT(s)
	assert.Error(t, err)

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err = noUser.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = m.ParseJWT(s)
	assert.Error(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "user-1"})
	s, err = noExp.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = m.ParseJWT(s)
	assert.Error(t, err)
}

func TestNewJWTManager_EmptySecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.Error(t, err)
}
