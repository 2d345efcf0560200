// Package tokenservice verifies bearer tokens against a trusted issuer's
// published signing keys and enforces per-operation permission scopes. The
// verifier and authorizer are stateless; key material comes in through the
// KeyProvider port.
package tokenservice
