package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/config"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

const testSecret = "test-signing-secret"

func newTestAuthService() *AuthService {
	return NewAuthService(config.JWTConfig{
		Secret:    testSecret,
		ExpiresIn: 168 * time.Hour,
		Issuer:    "taskboard-test",
	}, logger.NewNop())
}

func TestIssueAndAuthenticate(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.IssueToken("u1", "u1@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.SubjectID)
	assert.Equal(t, "u1@example.com", identity.Email)
}

func TestIssueTokenDefaultTTL(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.IssueToken("u1", "", 0)
	require.NoError(t, err)

	claims, err := svc.decode(token)
	require.NoError(t, err)

	// default is 7 days
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 167*time.Hour)
	assert.LessOrEqual(t, remaining, 168*time.Hour)
}

func TestIssueTokenRequiresSubject(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.IssueToken("", "someone@example.com", time.Hour)
	assert.ErrorIs(t, err, entities.ErrMissingSubject)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc := newTestAuthService()

	expired := signTestToken(t, testSecret, "u1", time.Now().Add(-time.Hour))
	forged := signTestToken(t, "some-other-secret", "u1", time.Now().Add(time.Hour))
	noSubject := signTestToken(t, testSecret, "", time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired token", token: expired},
		{name: "wrong signature", token: forged},
		{name: "missing subject", token: noSubject},
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Authenticate(tt.token)
			assert.Nil(t, identity)
			// The exact failure kind must not be distinguishable by
			// the caller.
			assert.ErrorIs(t, err, entities.ErrUnauthorized)
			assert.EqualError(t, err, entities.ErrUnauthorized.Error())
		})
	}
}

func TestAuthenticateRejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestAuthService()

	// alg=none with an empty signature must never validate
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Authenticate(unsigned)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestAuthorize(t *testing.T) {
	svc := newTestAuthService()

	identity := &entities.Identity{SubjectID: "u1", Email: "u1@example.com"}

	assert.NoError(t, svc.Authorize("u1", identity))
	assert.ErrorIs(t, svc.Authorize("u2", identity), entities.ErrForbidden)
	assert.ErrorIs(t, svc.Authorize("", identity), entities.ErrForbidden)
	assert.ErrorIs(t, svc.Authorize("u1", nil), entities.ErrForbidden)
}

func TestDecodeClassifiesFailureKinds(t *testing.T) {
	svc := newTestAuthService()

	expired := signTestToken(t, testSecret, "u1", time.Now().Add(-time.Hour))
	forged := signTestToken(t, "some-other-secret", "u1", time.Now().Add(time.Hour))

	_, err := svc.decode(expired)
	assert.ErrorIs(t, err, entities.ErrTokenExpired)

	_, err = svc.decode(forged)
	assert.ErrorIs(t, err, entities.ErrTokenSignature)

	_, err = svc.decode("garbage")
	assert.ErrorIs(t, err, entities.ErrTokenMalformed)
}

func signTestToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}
