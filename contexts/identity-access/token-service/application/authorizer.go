package application

import (
	"fmt"
	"log/slog"
	"net/http"

	"cantina/contexts/identity-access/token-service/domain/entities"
	autherrors "cantina/contexts/identity-access/token-service/domain/errors"
)

// Authorizer decides whether verified claims grant a required permission.
// Pure check, no side effects.
type Authorizer struct {
	Logger *slog.Logger
}

func (a Authorizer) Require(claims entities.Claims, required string) error {
	if !claims.PermissionsPresent {
		return autherrors.New(
			"invalid_claims",
			"permissions claim is missing from the token",
			http.StatusBadRequest,
		)
	}
	if !claims.HasPermission(required) {
		return autherrors.New(
			"unauthorized",
			fmt.Sprintf("permission %q not found in token", required),
			http.StatusUnauthorized,
		)
	}
	return nil
}
