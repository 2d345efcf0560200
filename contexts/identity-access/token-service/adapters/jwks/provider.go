package jwks

import (
	"context"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// Provider serves the issuer's JWKS through a process-wide cache. The cache
// fetches lazily and refreshes in the background; there is no explicit
// invalidation, so a rotated key is picked up on the next refresh.
type Provider struct {
	cache *jwk.Cache
	url   string
}

func NewProvider(ctx context.Context, url string, refreshInterval time.Duration) (*Provider, error) {
	if url == "" {
		return nil, fmt.Errorf("jwks url is required")
	}
	if refreshInterval <= 0 {
		refreshInterval = 15 * time.Minute
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(url, jwk.WithMinRefreshInterval(refreshInterval)); err != nil {
		return nil, fmt.Errorf("register jwks url: %w", err)
	}
	return &Provider{
		cache: cache,
		url:   url,
	}, nil
}

func (p *Provider) Keys(ctx context.Context) (jwk.Set, error) {
	return p.cache.Get(ctx, p.url)
}
