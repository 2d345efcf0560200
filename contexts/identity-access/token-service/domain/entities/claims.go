package entities

import "time"

// Claims is the decoded, verified payload of a bearer token. It lives only
// for the duration of one request.
//
// PermissionsPresent distinguishes a token that carries an empty
// permissions claim from one that omits the claim entirely; the authorizer
// reports those two cases differently.
type Claims struct {
	Issuer             string
	Subject            string
	Audience           []string
	ExpiresAt          time.Time
	Permissions        []string
	PermissionsPresent bool
}

func (c Claims) HasPermission(required string) bool {
	for _, permission := range c.Permissions {
		if permission == required {
			return true
		}
	}
	return false
}
