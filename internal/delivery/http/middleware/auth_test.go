package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"conferenceassistant/internal/delivery/http/helpers"
	"conferenceassistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSecretVerifier accepts exactly one secret, or fails with err.
type fakeSecretVerifier struct {
	secret string
	err    error
}

func (f *fakeSecretVerifier) Verify(_ context.Context, candidate string) error {
	if f.err != nil {
		return f.err
	}
	if candidate != f.secret {
		return domain.ErrUnauthorized
	}
	return nil
}

// fakeTokenVerifier accepts exactly one token.
type fakeTokenVerifier struct {
	token string
}

func (f *fakeTokenVerifier) Verify(token string) error {
	if token != f.token {
		return errors.New("invalid or expired token")
	}
	return nil
}

func TestRequireExportAccess(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		query      string
		authHeader string
		secrets    domain.SecretVerifier
		tokens     domain.ExportTokenVerifier
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "correct secret",
			query:      "?secret=s3cret",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "wrong secret",
			query:      "?secret=guess",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing secret",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty secret parameter",
			query:      "?secret=",
			secrets:    &fakeSecretVerifier{secret: ""},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid bearer token",
			authHeader: "Bearer tok",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			tokens:     &fakeTokenVerifier{token: "tok"},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "invalid bearer token",
			authHeader: "Bearer other",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			tokens:     &fakeTokenVerifier{token: "tok"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer without token verifier",
			authHeader: "Bearer tok",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret is not rescued by a valid token",
			query:      "?secret=guess",
			authHeader: "Bearer tok",
			secrets:    &fakeSecretVerifier{secret: "s3cret"},
			tokens:     &fakeTokenVerifier{token: "tok"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "secret backend failure",
			query:      "?secret=s3cret",
			secrets:    &fakeSecretVerifier{err: errors.New("secret store offline")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireExportAccess(tt.secrets, tt.tokens, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/listall"+tt.query, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			switch tt.wantStatus {
			case http.StatusUnauthorized:
				assert.Equal(t, UnauthorizedExportMessage, rr.Body.String())
				assert.Empty(t, rr.Header().Get("Retry-After"))
			case http.StatusInternalServerError:
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeInternalError, envelope.Error.Code)
			}
		})
	}
}
