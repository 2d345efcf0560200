package application

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cantina/contexts/identity-access/token-service/domain/entities"
	autherrors "cantina/contexts/identity-access/token-service/domain/errors"
	"cantina/contexts/identity-access/token-service/ports"

	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Verifier validates bearer tokens against the configured issuer's signing
// keys and expected audience. Every failure is an *autherrors.AuthError with
// a distinct code; the description travels to the client unchanged.
type Verifier struct {
	Keys     ports.KeyProvider
	Issuer   string
	Audience string
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (v Verifier) VerifyHeader(ctx context.Context, header string) (entities.Claims, error) {
	raw, err := extractBearer(header)
	if err != nil {
		return entities.Claims{}, err
	}

	// Decode-only pass separates "not a token at all" from signature and
	// claim failures below.
	if _, err := jwt.Parse([]byte(raw), jwt.WithVerify(false), jwt.WithValidate(false)); err != nil {
		return entities.Claims{}, autherrors.New(
			"invalid_header",
			"unable to decode the authentication token",
			http.StatusUnauthorized,
		)
	}

	keySet, err := v.Keys.Keys(ctx)
	if err != nil {
		v.log().Error("signing key fetch failed",
			"event", "keyset_fetch_failed",
			"error", err.Error(),
		)
		return entities.Claims{}, autherrors.New(
			"keyset_unavailable",
			"unable to fetch the issuer signing keys",
			http.StatusUnauthorized,
		)
	}

	token, err := jwt.Parse([]byte(raw),
		jwt.WithKeySet(keySet, jws.WithInferAlgorithmFromKey(true)),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.Issuer),
		jwt.WithAudience(v.Audience),
		jwt.WithClock(jwt.ClockFunc(v.now)),
	)
	if err != nil {
		return entities.Claims{}, translateParseError(err)
	}

	claims := entities.Claims{
		Issuer:    token.Issuer(),
		Subject:   token.Subject(),
		Audience:  token.Audience(),
		ExpiresAt: token.Expiration(),
	}
	if rawPermissions, ok := token.Get("permissions"); ok {
		claims.PermissionsPresent = true
		claims.Permissions = toStringSlice(rawPermissions)
	}
	return claims, nil
}

func extractBearer(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", autherrors.New(
			"authorization_header_missing",
			"authorization header is expected",
			http.StatusUnauthorized,
		)
	}

	parts := strings.Fields(header)
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", autherrors.New(
			"invalid_header",
			"authorization header must start with Bearer",
			http.StatusUnauthorized,
		)
	}
	if len(parts) == 1 {
		return "", autherrors.New(
			"invalid_header",
			"bearer token not found",
			http.StatusUnauthorized,
		)
	}
	if len(parts) > 2 {
		return "", autherrors.New(
			"invalid_header",
			"authorization header must be a bearer token",
			http.StatusUnauthorized,
		)
	}
	return parts[1], nil
}

func translateParseError(err error) *autherrors.AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired()):
		return autherrors.New(
			"token_expired",
			"token is expired",
			http.StatusUnauthorized,
		)
	case errors.Is(err, jwt.ErrInvalidIssuer()), errors.Is(err, jwt.ErrInvalidAudience()):
		return autherrors.New(
			"invalid_claims",
			"incorrect claims, check the audience and issuer",
			http.StatusUnauthorized,
		)
	default:
		return autherrors.New(
			"invalid_signature",
			"token signature could not be verified against the issuer keys",
			http.StatusUnauthorized,
		)
	}
}

func toStringSlice(raw any) []string {
	switch values := raw.(type) {
	case []string:
		return append([]string(nil), values...)
	case []any:
		out := make([]string, 0, len(values))
		for _, value := range values {
			if s, ok := value.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// Some issuers emit a single scope as a bare string.
		return []string{values}
	default:
		return nil
	}
}

func (v Verifier) now() time.Time {
	if v.Clock != nil {
		return v.Clock.Now()
	}
	return time.Now()
}

func (v Verifier) log() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}
