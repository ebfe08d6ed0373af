package handler

import (
    "net/http" // HTTP status codes
    "strings"  // query parameter normalization
    "time"     // stats evaluation time

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/greenbridge/eco-volunteer/internal/model"
    "github.com/greenbridge/eco-volunteer/internal/repository"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// PublicHandler serves the read-only series endpoints.  No
// authentication is required: volunteers browse series, their
// instances and their statistics before registering.  All methods are
// safe to re-fetch at any time; nothing here mutates state.
type PublicHandler struct {
    SeriesRepo       *repository.SeriesRepo       // series lookups and listing
    InstanceRepo     *repository.InstanceRepo     // instance listing
    RegistrationRepo *repository.RegistrationRepo // registration/attendance counts for stats
    Generator        *series.Generator            // next-occurrence preview
}

// NewPublicHandler constructs a PublicHandler with the provided
// dependencies.  All must be non-nil.
func NewPublicHandler(seriesRepo *repository.SeriesRepo, instanceRepo *repository.InstanceRepo, registrationRepo *repository.RegistrationRepo, gen *series.Generator) *PublicHandler {
    if seriesRepo == nil || instanceRepo == nil || registrationRepo == nil || gen == nil {
        panic("nil dependency passed to NewPublicHandler")
    }
    return &PublicHandler{
        SeriesRepo:       seriesRepo,
        InstanceRepo:     instanceRepo,
        RegistrationRepo: registrationRepo,
        Generator:        gen,
    }
}

// ListSeries handles GET /v1/series.  The optional ?status= query
// parameter filters by lifecycle state (active, paused, completed,
// cancelled); anything else is rejected with 400.
func (h *PublicHandler) ListSeries(c echo.Context) error {
    var status model.SeriesStatus
    if q := c.QueryParam("status"); q != "" {
        switch model.SeriesStatus(strings.ToUpper(q)) {
        case model.SeriesActive, model.SeriesPaused, model.SeriesCompleted, model.SeriesCancelled:
            status = model.SeriesStatus(strings.ToUpper(q))
        default:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status filter"})
        }
    }
    list, err := h.SeriesRepo.List(c.Request().Context(), status)
    if err != nil {
        return engineError(c, err)
    }
    out := make([]seriesResponse, 0, len(list))
    for i := range list {
        out = append(out, toSeriesResponse(&list[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"series": out})
}

// GetSeries handles GET /v1/series/:id.
func (h *PublicHandler) GetSeries(c echo.Context) error {
    id, err := parseSeriesID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid series id"})
    }
    s, err := h.SeriesRepo.GetByID(c.Request().Context(), id)
    if err != nil {
        return engineError(c, err)
    }
    return c.JSON(http.StatusOK, toSeriesResponse(s))
}

// ListInstances handles GET /v1/series/:id/instances.  Instances are
// returned ordered by instance number ascending; history is preserved
// even for cancelled or completed series.
func (h *PublicHandler) ListInstances(c echo.Context) error {
    id, err := parseSeriesID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid series id"})
    }
    ctx := c.Request().Context()
    // Ensure the series exists so unknown IDs yield 404, not an empty list.
    if _, err := h.SeriesRepo.GetByID(ctx, id); err != nil {
        return engineError(c, err)
    }
    instances, err := h.InstanceRepo.ListBySeries(ctx, id)
    if err != nil {
        return engineError(c, err)
    }
    out := make([]instanceResponse, 0, len(instances))
    for i := range instances {
        out = append(out, toInstanceResponse(&instances[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"series_id": id, "instances": out})
}

// GetStats handles GET /v1/series/:id/stats.  Statistics are
// recomputed from a snapshot of the series' instances on every call;
// they are advisory, so no locking beyond the snapshot is needed.
func (h *PublicHandler) GetStats(c echo.Context) error {
    id, err := parseSeriesID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid series id"})
    }
    ctx := c.Request().Context()
    if _, err := h.SeriesRepo.GetByID(ctx, id); err != nil {
        return engineError(c, err)
    }
    instances, err := h.InstanceRepo.ListBySeries(ctx, id)
    if err != nil {
        return engineError(c, err)
    }
    activity, err := h.RegistrationRepo.ActivityBySeries(ctx, id)
    if err != nil {
        return engineError(c, err)
    }
    st := series.ComputeStats(instances, activity, time.Now().UTC())
    return c.JSON(http.StatusOK, echo.Map{"series_id": id, "stats": st})
}

// PreviewNext handles GET /v1/series/:id/next.  It computes the
// dates the next instance would get without persisting anything, and
// reports whether a bound would block it.  Works for any status so
// organizers can inspect paused or finished series.
func (h *PublicHandler) PreviewNext(c echo.Context) error {
    id, err := parseSeriesID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid series id"})
    }
    p, err := h.Generator.PreviewNext(c.Request().Context(), id)
    if err != nil {
        return engineError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "series_id":      id,
        "status":         p.Status,
        "next_number":    p.NextNumber,
        "start_datetime": p.StartDateTime.UTC().Format(time.RFC3339),
        "end_datetime":   p.EndDateTime.UTC().Format(time.RFC3339),
        "bound":          p.Bound,
        "creatable":      p.Status == model.SeriesActive && !p.Bound.Blocked(),
    })
}
