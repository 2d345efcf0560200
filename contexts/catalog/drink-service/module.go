package drinkservice

import (
	"log/slog"

	httpadapter "cantina/contexts/catalog/drink-service/adapters/http"
	"cantina/contexts/catalog/drink-service/adapters/memory"
	"cantina/contexts/catalog/drink-service/application"
	"cantina/contexts/catalog/drink-service/ports"
)

// Module is the composition surface for the drink catalog. Runtime wiring
// consumes Handler; Store is populated only for in-memory wiring and is
// exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
