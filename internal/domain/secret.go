package domain

import (
	"context"
	"time"
)

// SecretProvider returns the process-wide export secret.
type SecretProvider interface {
	Get(ctx context.Context) (string, error)
}

// SecretVerifier checks a caller-supplied export secret.
type SecretVerifier interface {
	Verify(ctx context.Context, candidate string) error
}

// ExportTokenIssuer issues short-lived tokens that grant access to the CSV export.
type ExportTokenIssuer interface {
	Issue(ttl time.Duration) (string, error)
}

// ExportTokenVerifier validates an export token.
type ExportTokenVerifier interface {
	Verify(token string) error
}
