package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/greenbridge/eco-volunteer/internal/config"     // Internal config loader
	"github.com/greenbridge/eco-volunteer/internal/database"   // MySQL connection pool
	"github.com/greenbridge/eco-volunteer/internal/handler"    // HTTP handlers
	"github.com/greenbridge/eco-volunteer/internal/queue"      // RabbitMQ consumer
	"github.com/greenbridge/eco-volunteer/internal/repository" // Data access layer
	"github.com/greenbridge/eco-volunteer/internal/router"     // Route registration
	"github.com/greenbridge/eco-volunteer/internal/series"     // Series engine
	publisher "github.com/greenbridge/eco-volunteer/internal/service" // Lifecycle event publishing
)

func main() {
	// Load .env if present.  In containerized deployments the variables are
	// injected directly, so a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// Open the MySQL connection pool.  All series, instance and registration
	// state lives here; the process cannot run without it.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional.  Without it the public routes simply run without
	// response caching and rate limiting.
	rdb := config.NewRedisClient()

	// Repositories and the engine store.  The store is the only component
	// allowed to claim instance numbers, so the generator is built on it.
	seriesRepo := repository.NewSeriesRepo(db)
	instanceRepo := repository.NewInstanceRepo(db)
	registrationRepo := repository.NewRegistrationRepo(db)
	store := repository.NewEngineStore(db, seriesRepo, instanceRepo)
	gen := series.NewGenerator(store)

	// Every successful creation or bound-driven completion publishes its
	// lifecycle event through this wrapper, whichever trigger caused it.
	chain := publisher.NewPublishingGenerator(gen, seriesRepo)

	pub := handler.NewPublicHandler(seriesRepo, instanceRepo, registrationRepo, gen)
	org := handler.NewOrganizerHandler(seriesRepo, chain)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterPublic(e, pub, rdb)
	router.RegisterOrganizer(e, org, cfg.JWTSecret)

	// Consume event.completed signals in the background so finished events
	// chain into their successors without an organizer touching the API.
	go func() {
		if err := queue.StartEventCompletedConsumer(chain); err != nil {
			log.Printf("event.completed consumer disabled: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
