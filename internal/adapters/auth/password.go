package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"conferenceassistant/internal/domain"
)

type staticSecret struct {
	value string
}

// NewStaticSecretProvider returns a SecretProvider that always yields value,
// normally EXPORT_SECRET from the process environment.
func NewStaticSecretProvider(value string) domain.SecretProvider {
	return &staticSecret{value: value}
}

func (s *staticSecret) Get(context.Context) (string, error) {
	return s.value, nil
}

type secretVerifier struct {
	provider domain.SecretProvider
	hash     []byte
}

// NewSecretVerifier returns a SecretVerifier for the export secret. When bcryptHash is set
// the candidate is checked against it; otherwise it is compared in constant time with the
// secret from provider. An empty configured secret rejects every candidate.
func NewSecretVerifier(provider domain.SecretProvider, bcryptHash string) domain.SecretVerifier {
	v := &secretVerifier{provider: provider}
	if bcryptHash != "" {
		v.hash = []byte(bcryptHash)
	}
	return v
}

func (v *secretVerifier) Verify(ctx context.Context, candidate string) error {
	if candidate == "" {
		return domain.ErrUnauthorized
	}
	if v.hash != nil {
		if err := bcrypt.CompareHashAndPassword(v.hash, []byte(candidate)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("compare export secret: %w", err)
		}
		return nil
	}
	if v.provider == nil {
		return domain.ErrUnauthorized
	}
	secret, err := v.provider.Get(ctx)
	if err != nil {
		return fmt.Errorf("load export secret: %w", err)
	}
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}

// HashSecret returns the bcrypt hash of secret for use as EXPORT_SECRET_HASH.
func HashSecret(secret string, cost int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("secret is empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}
