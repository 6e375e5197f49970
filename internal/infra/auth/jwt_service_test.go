package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"projectdesk/config"
	"projectdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
}

func decodePayload(t *testing.T, token string) map[string]any {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	return payload
}

func TestJWTService_SignAndVerify(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokenSvc.Sign(&service.Claims{
		Email:            "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenSvc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_PayloadHasExactlySessionClaims(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := tokenSvc.Sign(&service.Claims{
		Email:            "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	})
	require.NoError(t, err)

	payload := decodePayload(t, token)
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	assert.ElementsMatch(t, []string{"sub", "email", "iat", "exp"}, keys)
}

func TestJWTService_SignDoesNotMutateInput(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims := &service.Claims{Email: "jane@example.com"}
	_, err = tokenSvc.Sign(claims)
	require.NoError(t, err)

	assert.Nil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := tokenSvc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := signer.Sign(&service.Claims{Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	svc, ok := tokenSvc.(*jwtService)
	require.True(t, ok)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Sign(&service.Claims{Email: "jane@example.com"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		Email: "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokenSvc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	tokenSvc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenSvc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{SecretKey: config.SecretKeyConfig{Access: "secret"}}

	tokenSvc, err := NewJWTService(cfg)
	require.NoError(t, err)

	svc, ok := tokenSvc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, config.DefaultAccessTokenTTL, svc.accessTTL)
}
