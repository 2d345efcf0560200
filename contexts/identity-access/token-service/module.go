package tokenservice

import (
	"log/slog"

	"cantina/contexts/identity-access/token-service/application"
	"cantina/contexts/identity-access/token-service/ports"
)

type Module struct {
	Verifier   application.Verifier
	Authorizer application.Authorizer
}

type Dependencies struct {
	Keys     ports.KeyProvider
	Issuer   string
	Audience string
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return Module{
		Verifier: application.Verifier{
			Keys:     deps.Keys,
			Issuer:   deps.Issuer,
			Audience: deps.Audience,
			Clock:    clock,
			Logger:   deps.Logger,
		},
		Authorizer: application.Authorizer{
			Logger: deps.Logger,
		},
	}
}
