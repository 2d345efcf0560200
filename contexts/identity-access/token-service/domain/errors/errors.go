package errors

import "fmt"

// AuthError is a terminal authentication or authorization failure. The
// boundary relays StatusCode and Description verbatim to the client, so
// both must be set on every path that constructs one.
type AuthError struct {
	Code        string
	Description string
	StatusCode  int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func New(code string, description string, statusCode int) *AuthError {
	return &AuthError{
		Code:        code,
		Description: description,
		StatusCode:  statusCode,
	}
}
