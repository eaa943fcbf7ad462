package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-secret")

func mintToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	assert.NoError(t, err)
	return signed
}

func TestHMACVerifierValidToken(t *testing.T) {
	v := &HMACVerifier{Secret: testSecret}
	token := mintToken(t, testSecret, jwt.MapClaims{
		"sub":   "uid-1",
		"email": "donor@example.com",
		"name":  "Donor One",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := v.Verify(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "donor@example.com", identity.Email)
	assert.Equal(t, "Donor One", identity.Name)
	assert.Equal(t, "uid-1", identity.UID)
}

func TestHMACVerifierExpiredToken(t *testing.T) {
	v := &HMACVerifier{Secret: testSecret}
	token := mintToken(t, testSecret, jwt.MapClaims{
		"email": "donor@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestHMACVerifierWrongSecret(t *testing.T) {
	v := &HMACVerifier{Secret: testSecret}
	token := mintToken(t, []byte("other-secret"), jwt.MapClaims{
		"email": "donor@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestHMACVerifierMissingEmailClaim(t *testing.T) {
	v := &HMACVerifier{Secret: testSecret}
	token := mintToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.Error(t, err)
}
