package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"conferenceassistant/internal/domain"
)

// ExportTokenSubject is the subject claim carried by every export token.
const ExportTokenSubject = "export"

var errNoSigningSecret = errors.New("export secret is not configured")

type exportClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

type jwtExportTokens struct {
	secret []byte
	now    func() time.Time
}

// NewExportTokenIssuer returns an ExportTokenIssuer that signs HS256 JWTs with secret.
func NewExportTokenIssuer(secret string) domain.ExportTokenIssuer {
	return &jwtExportTokens{secret: []byte(secret), now: time.Now}
}

// NewExportTokenVerifier returns an ExportTokenVerifier for tokens signed with secret.
func NewExportTokenVerifier(secret string) domain.ExportTokenVerifier {
	return &jwtExportTokens{secret: []byte(secret), now: time.Now}
}

func (j *jwtExportTokens) Issue(ttl time.Duration) (string, error) {
	if len(j.secret) == 0 {
		return "", errNoSigningSecret
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	now := j.now()
	claims := exportClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ExportTokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope: "submissions:read",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *jwtExportTokens) Verify(tokenString string) error {
	if len(j.secret) == 0 {
		return domain.ErrUnauthorized
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &exportClaims{}, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithSubject(ExportTokenSubject),
		jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))
	if err != nil || !parsed.Valid {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return nil
}
