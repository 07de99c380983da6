package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferenceassistant/internal/domain"
)

func TestExportTokenIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	token, err := NewExportTokenIssuer(secret).Issue(time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &exportClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*exportClaims)
	require.True(t, ok)
	assert.Equal(t, ExportTokenSubject, claims.Subject)
	assert.Equal(t, "submissions:read", claims.Scope)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestExportTokenIssuer_Errors(t *testing.T) {
	_, err := NewExportTokenIssuer("").Issue(time.Hour)
	require.Error(t, err)

	_, err = NewExportTokenIssuer("s").Issue(0)
	require.Error(t, err)
}

func TestExportTokenVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	valid, err := NewExportTokenIssuer(secret).Issue(time.Hour)
	require.NoError(t, err)

	expiredIssuer := &jwtExportTokens{secret: []byte(secret), now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
	expired, err := expiredIssuer.Issue(time.Hour)
	require.NoError(t, err)

	otherSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: ExportTokenSubject,
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	wrongKey, err := NewExportTokenIssuer("other-secret").Issue(time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		secret   string
		token    string
		wantPass bool
	}{
		{name: "valid token", secret: secret, token: valid, wantPass: true},
		{name: "expired token", secret: secret, token: expired},
		{name: "wrong subject", secret: secret, token: otherSubject},
		{name: "missing expiry", secret: secret, token: noExpiry},
		{name: "wrong signing key", secret: secret, token: wrongKey},
		{name: "garbage", secret: secret, token: "not.a.jwt"},
		{name: "verifier without secret", secret: "", token: valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewExportTokenVerifier(tt.secret).Verify(tt.token)
			if tt.wantPass {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
