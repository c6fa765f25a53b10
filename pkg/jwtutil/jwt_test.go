package jwtutil_test

import (
	"testing"

	"github.com/shoplite/storeapi/pkg/config"
	"github.com/shoplite/storeapi/pkg/jwtutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTUtil_RoundTrip(t *testing.T) {
	j := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})

	token, err := j.GenerateToken("a@example.com", 5, "admin")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTUtil_RejectsForeignSignature(t *testing.T) {
	issuer := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "issuer-key", ExpirationHours: 1})
	verifier := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "other-key", ExpirationHours: 1})

	token, err := issuer.GenerateToken("a@example.com", 5, "customer")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTUtil_RejectsGarbage(t *testing.T) {
	j := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})
	_, err := j.ValidateToken("not.a.token")
	assert.Error(t, err)
}
