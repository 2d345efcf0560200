package httpserver

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	drinkservice "cantina/contexts/catalog/drink-service"
	"cantina/contexts/catalog/drink-service/adapters/memory"
	tokenservice "cantina/contexts/identity-access/token-service"
	"cantina/contexts/identity-access/token-service/adapters/static"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	testIssuer   = "https://issuer.test/"
	testAudience = "cantina-api"
)

type testEnv struct {
	server  *Server
	store   *memory.Store
	privKey jwk.Key
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	privKey, err := jwk.FromRaw(raw)
	if err != nil {
		t.Fatalf("wrap private key: %v", err)
	}
	if err := privKey.Set(jwk.KeyIDKey, "server-test-key"); err != nil {
		t.Fatalf("set kid: %v", err)
	}
	if err := privKey.Set(jwk.AlgorithmKey, jwa.RS256); err != nil {
		t.Fatalf("set alg: %v", err)
	}
	pubKey, err := privKey.PublicKey()
	if err != nil {
		t.Fatalf("derive public key: %v", err)
	}
	set := jwk.NewSet()
	if err := set.AddKey(pubKey); err != nil {
		t.Fatalf("add public key: %v", err)
	}

	catalog := drinkservice.NewInMemoryModule(logger)
	tokens := tokenservice.NewModule(tokenservice.Dependencies{
		Keys:     static.NewProvider(set),
		Issuer:   testIssuer,
		Audience: testAudience,
		Logger:   logger,
	})

	return &testEnv{
		server:  New(catalog, tokens, logger, ":0"),
		store:   catalog.Store,
		privKey: privKey,
	}
}

// token mints a valid bearer token carrying the given permissions.
func (e *testEnv) token(t *testing.T, permissions ...string) string {
	t.Helper()
	return e.mint(t, time.Hour, permissions)
}

func (e *testEnv) expiredToken(t *testing.T, permissions ...string) string {
	t.Helper()
	return e.mint(t, -time.Hour, permissions)
}

func (e *testEnv) mint(t *testing.T, expiresIn time.Duration, permissions []string) string {
	t.Helper()

	now := time.Now()
	token, err := jwt.NewBuilder().
		Issuer(testIssuer).
		Audience([]string{testAudience}).
		Subject("barista-1").
		IssuedAt(now).
		Expiration(now.Add(expiresIn)).
		Claim("permissions", permissions).
		Build()
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, e.privKey))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return string(signed)
}

func (e *testEnv) do(t *testing.T, method string, path string, bearer string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rr, req)
	return rr
}
