package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"conferenceassistant/internal/domain"
)

type failingProvider struct{}

func (failingProvider) Get(context.Context) (string, error) {
	return "", errors.New("secret store offline")
}

func TestSecretVerifier_Plain(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		secret    string
		candidate string
		wantErr   error
	}{
		{name: "match", secret: "s3cret", candidate: "s3cret"},
		{name: "mismatch", secret: "s3cret", candidate: "guess", wantErr: domain.ErrUnauthorized},
		{name: "prefix only", secret: "s3cret", candidate: "s3c", wantErr: domain.ErrUnauthorized},
		{name: "missing candidate", secret: "s3cret", candidate: "", wantErr: domain.ErrUnauthorized},
		{name: "unconfigured secret rejects everything", secret: "", candidate: "anything", wantErr: domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecretVerifier(NewStaticSecretProvider(tt.secret), "")
			err := v.Verify(ctx, tt.candidate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSecretVerifier_ProviderError(t *testing.T) {
	err := NewSecretVerifier(failingProvider{}, "").Verify(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSecretVerifier_Bcrypt(t *testing.T) {
	ctx := context.Background()
	hash, err := HashSecret("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	v := NewSecretVerifier(NewStaticSecretProvider("ignored"), hash)
	assert.NoError(t, v.Verify(ctx, "s3cret"))
	assert.ErrorIs(t, v.Verify(ctx, "ignored"), domain.ErrUnauthorized)
	assert.ErrorIs(t, v.Verify(ctx, ""), domain.ErrUnauthorized)
}

func TestSecretVerifier_BadHash(t *testing.T) {
	v := NewSecretVerifier(nil, "not-a-bcrypt-hash")
	err := v.Verify(context.Background(), "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHashSecret(t *testing.T) {
	_, err := HashSecret("", bcrypt.MinCost)
	require.Error(t, err)

	hash, err := HashSecret("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
