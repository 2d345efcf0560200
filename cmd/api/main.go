package main

import (
	"context"
	"log"

	"cantina/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + modules).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI(context.Background())
	if err != nil {
		log.Fatalf("cantina api bootstrap failed: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("cantina api stopped: %v", err)
	}
}
