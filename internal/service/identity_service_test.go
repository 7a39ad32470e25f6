package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, subject, issuer string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIdentityServiceValidateToken(t *testing.T) {
	subject := uuid.NewString()
	svc := NewIdentityService(IdentityConfig{TokenSecret: testSecret}, zap.NewNop())

	claims, err := svc.ValidateToken(signToken(t, testSecret, subject, "", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, subject, claims.UserID())
}

func TestIdentityServiceValidateTokenWrongSecret(t *testing.T) {
	svc := NewIdentityService(IdentityConfig{TokenSecret: testSecret}, zap.NewNop())

	_, err := svc.ValidateToken(signToken(t, "other-secret", uuid.NewString(), "", time.Hour))
	require.Error(t, err)
}

func TestIdentityServiceValidateTokenExpired(t *testing.T) {
	svc := NewIdentityService(IdentityConfig{TokenSecret: testSecret}, zap.NewNop())

	_, err := svc.ValidateToken(signToken(t, testSecret, uuid.NewString(), "", -time.Minute))
	require.Error(t, err)
}

func TestIdentityServiceValidateTokenNonUUIDSubject(t *testing.T) {
	svc := NewIdentityService(IdentityConfig{TokenSecret: testSecret}, zap.NewNop())

	_, err := svc.ValidateToken(signToken(t, testSecret, "student-42", "", time.Hour))
	require.Error(t, err)
}

func TestIdentityServiceValidateTokenIssuerCheck(t *testing.T) {
	svc := NewIdentityService(IdentityConfig{TokenSecret: testSecret, Issuer: "idp.example.com"}, zap.NewNop())

	_, err := svc.ValidateToken(signToken(t, testSecret, uuid.NewString(), "someone-else", time.Hour))
	require.Error(t, err)

	claims, err := svc.ValidateToken(signToken(t, testSecret, uuid.NewString(), "idp.example.com", time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID())
}

func TestIdentityServiceValidateTokenGarbage(t *testing.T) {
	svc := NewIdentityService(IdentityConfig{TokenSecret: testSecret}, zap.NewNop())

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
