package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/greenbridge/eco-volunteer/internal/recurrence"
    "github.com/greenbridge/eco-volunteer/internal/repository"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// engineError translates engine and repository errors into HTTP
// responses.  Every body carries a machine-readable "code" so callers
// can tell the error kinds apart without parsing messages:
//
//   series_not_found        404  the series does not exist
//   series_not_active       409  mutation attempted on a paused/finished series
//   invalid_transition      409  status command illegal from the current state
//   invalid_rule            400  malformed recurrence rule
//   concurrent_modification 409  lost a race; retry with backoff
//   forbidden               403  series owned by another organization
//
// ErrSeriesCompleted is intentionally not handled here: it is an
// expected outcome, not a failure, and its handler responds 200.
func engineError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, series.ErrSeriesNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "series not found", "code": "series_not_found"})
    case errors.Is(err, series.ErrSeriesNotActive):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error(), "code": "series_not_active"})
    case errors.Is(err, series.ErrInvalidTransition):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error(), "code": "invalid_transition"})
    case errors.Is(err, recurrence.ErrInvalidRule):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "code": "invalid_rule"})
    case errors.Is(err, series.ErrConcurrentModification), errors.Is(err, repository.ErrStaleStatus):
        return c.JSON(http.StatusConflict, echo.Map{"error": "series was modified concurrently, retry", "code": "concurrent_modification"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden", "code": "forbidden"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error", "code": "internal"})
    }
}
