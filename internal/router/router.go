package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/greenbridge/eco-volunteer/internal/config"
	"github.com/greenbridge/eco-volunteer/internal/handler"    // import the handlers that implement business logic
	"github.com/greenbridge/eco-volunteer/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance.  The PublicHandler exposes read-only views over event series
// and their generated instances.  These routes apply no JWT or role
// middleware and are intended for guests browsing upcoming volunteer events.
// When a Redis client is available the routes are additionally guarded by a
// token-bucket rate limiter and a short-TTL response cache; with rdb == nil
// both middlewares disable themselves and the routes serve directly.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	g := e.Group(
		"/v1",
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	// Browse all series, optionally filtered with ?status=ACTIVE etc.
	g.GET("/series", p.ListSeries)
	// Full detail of a single series including its recurrence rule.
	g.GET("/series/:id", p.GetSeries)
	// Every instance generated so far for a series, in generation order.
	g.GET("/series/:id/instances", p.ListInstances)
	// Aggregate participation statistics across a series' instances.
	g.GET("/series/:id/stats", p.GetStats)
	// Preview of the next occurrence without creating it.  The response
	// includes whether the occurrence could actually be generated, so
	// clients can show "series ending" hints before the final instance.
	g.GET("/series/:id/next", p.PreviewNext)
}

// RegisterOrganizer registers ORGANIZER-scoped endpoints under /v1.
// All routes require a valid JWT and ORGANIZER role.
func RegisterOrganizer(e *echo.Echo, o *handler.OrganizerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ORGANIZER"),
	)

	// Create a new recurring series.  The series starts out ACTIVE and the
	// recurrence rule is validated before anything is persisted.
	g.POST("/series", o.CreateSeries)
	// Lifecycle commands: pause, resume, cancel.  Transition legality is
	// enforced in the series package; illegal commands get a 409.
	g.POST("/series/:id/status", o.UpdateStatus)
	// Materialize the next occurrence of the series as a concrete instance.
	// Returns 200 with {"completed": true} when the series has run out of
	// room instead of creating anything.
	g.POST("/series/:id/instances", o.CreateNextInstance)
}
