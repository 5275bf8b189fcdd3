package main

import (
	"context"
	"log"

	"ai-legaldoc-be/internal/bootstrap"
	"ai-legaldoc-be/internal/config"
	"ai-legaldoc-be/internal/server"
	"ai-legaldoc-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Otel)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Event Relay Service...")
		if err := container.EventRelayService.Consume(context.Background()); err != nil {
			log.Printf("Background Event Relay Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
