package ports

import (
	"context"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// KeyProvider supplies the issuer's current public signing keys. The JWKS
// adapter serves a cached remote set; the static adapter serves a fixed one.
type KeyProvider interface {
	Keys(ctx context.Context) (jwk.Set, error)
}

type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
