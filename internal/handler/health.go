package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health reports process liveness.  Load balancers and uptime probes
// hit it to confirm the engine is serving requests; it answers with a
// plain "ok" and a 200 status, touching neither the database nor the
// broker so a degraded dependency never fails the probe.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}
