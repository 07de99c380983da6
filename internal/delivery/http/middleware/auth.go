package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "conferenceassistant/internal/delivery/http/helpers"
	"conferenceassistant/internal/domain"
)

type contextKey string

// UnauthorizedExportMessage is the plain-text body of every rejected export request.
const UnauthorizedExportMessage = "Unauthorized: Invalid or missing secret key"

// RequireExportAccess returns a wrapper that admits a request carrying either the export
// secret in the "secret" query parameter or a valid export token as a Bearer credential.
// Anything else gets 401 with a plain-text body and next is not called. tokens may be nil,
// in which case only the secret is accepted.
func RequireExportAccess(secrets domain.SecretVerifier, tokens domain.ExportTokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if secret := r.URL.Query().Get("secret"); secret != "" {
				err := secrets.Verify(ctx, secret)
				switch {
				case err == nil:
					next(w, r)
				case errors.Is(err, domain.ErrUnauthorized):
					logger.WarnContext(ctx, "export rejected", "reason", "wrong secret")
					h.WritePlainText(w, http.StatusUnauthorized, UnauthorizedExportMessage)
				default:
					logger.ErrorContext(ctx, "export secret check failed", "err", err)
					h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "secret check failed")
				}
				return
			}

			const prefix = "Bearer "
			auth := r.Header.Get("Authorization")
			if tokens != nil && strings.HasPrefix(auth, prefix) {
				token := strings.TrimSpace(auth[len(prefix):])
				if token != "" && tokens.Verify(token) == nil {
					next(w, r)
					return
				}
				logger.WarnContext(ctx, "export rejected", "reason", "invalid token")
				h.WritePlainText(w, http.StatusUnauthorized, UnauthorizedExportMessage)
				return
			}

			logger.WarnContext(ctx, "export rejected", "reason", "missing credentials")
			h.WritePlainText(w, http.StatusUnauthorized, UnauthorizedExportMessage)
		}
	}
}
