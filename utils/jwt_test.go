package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipsea/config"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = secret
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })
}

func TestAdminToken_RoundTrip(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateAdminToken("ops@zipsea.com", time.Hour)
	require.NoError(t, err)

	sub, err := AdminSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@zipsea.com", sub)
}

func TestAdminSubject_RejectsExpired(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateAdminToken("ops", -time.Minute)
	require.NoError(t, err)

	_, err = AdminSubject(token)
	assert.Error(t, err)
}

func TestAdminSubject_RejectsNonAdmin(t *testing.T) {
	withSecret(t, "test-secret")

	claims := jwt.MapClaims{"sub": "guest", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = AdminSubject(token)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminSubject_NoSecret(t *testing.T) {
	withSecret(t, "")

	_, err := AdminSubject("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}
