package handler

import (
    "context"       // InstanceCreator contract
    "encoding/json" // raw recurrence rule pass-through
    "errors"        // errors.Is comparisons
    "net/http"      // HTTP status codes
    "time"          // timestamp parsing and formatting

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/greenbridge/eco-volunteer/internal/model"
    "github.com/greenbridge/eco-volunteer/internal/recurrence"
    "github.com/greenbridge/eco-volunteer/internal/repository"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// InstanceCreator is the slice of the engine this handler triggers.
// In production it is the service package's publishing wrapper, so
// lifecycle events are emitted from one place for both this endpoint
// and the automatic chaining consumer.
type InstanceCreator interface {
    CreateNext(ctx context.Context, seriesID uint64) (*model.Instance, error)
}

// OrganizerHandler serves the series endpoints that mutate state:
// creating a series, issuing lifecycle commands and triggering the
// next instance.  All methods assume JWT authentication and the
// ORGANIZER role have been enforced by middleware; ownership of the
// series by the caller's organization is validated here.
type OrganizerHandler struct {
    SeriesRepo *repository.SeriesRepo // series persistence
    Generator  InstanceCreator        // shared "create next" entry point
}

// NewOrganizerHandler constructs an OrganizerHandler with the
// provided dependencies.  All must be non-nil.
func NewOrganizerHandler(seriesRepo *repository.SeriesRepo, gen InstanceCreator) *OrganizerHandler {
    if seriesRepo == nil || gen == nil {
        panic("nil dependency passed to NewOrganizerHandler")
    }
    return &OrganizerHandler{SeriesRepo: seriesRepo, Generator: gen}
}

// ownSeries loads the series and verifies it belongs to the caller's
// organization.  repository.ErrForbidden is returned on a mismatch so
// organizers cannot operate on other organizations' series.
func (h *OrganizerHandler) ownSeries(c echo.Context, id uint64) (*model.Series, error) {
    orgID, err := getOrgID(c)
    if err != nil {
        return nil, err
    }
    s, err := h.SeriesRepo.GetByID(c.Request().Context(), id)
    if err != nil {
        return nil, err
    }
    if s.OrganizationID != orgID {
        return nil, repository.ErrForbidden
    }
    return s, nil
}

// CreateSeries handles POST /v1/series.  The request body carries the
// template fields, the recurrence rule and the optional bounds:
//
//	{
//	  "title": "...", "description": "...", "location": "...",
//	  "recurrence_type": "DAILY|WEEKLY|MONTHLY",
//	  "recurrence": {"interval": 2, ...},
//	  "start_date": "2025-06-01T09:00:00Z",
//	  "duration_minutes": 120,
//	  "end_date": "...",        // optional bound
//	  "max_instances": 12       // optional bound
//	}
//
// The rule is validated by the occurrence calculator before anything
// is persisted; a malformed rule yields 400 and no mutation.  On
// success the series is created ACTIVE with a zero counter and
// returned with 201.
func (h *OrganizerHandler) CreateSeries(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    orgID, err := getOrgID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        Title           string          `json:"title"`
        Description     string          `json:"description"`
        Location        string          `json:"location"`
        RecurrenceType  string          `json:"recurrence_type"`
        Recurrence      json.RawMessage `json:"recurrence"`
        StartDate       string          `json:"start_date"`
        EndDate         *string         `json:"end_date"`
        MaxInstances    *uint32         `json:"max_instances"`
        DurationMinutes uint32          `json:"duration_minutes"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Title == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
    }
    if body.DurationMinutes == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_minutes must be positive"})
    }
    startDate, err := time.Parse(time.RFC3339, body.StartDate)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be RFC3339"})
    }
    var endDate *time.Time
    if body.EndDate != nil {
        t, err := time.Parse(time.RFC3339, *body.EndDate)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be RFC3339"})
        }
        if t.Before(startDate) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not precede start_date"})
        }
        u := t.UTC()
        endDate = &u
    }
    if body.MaxInstances != nil && *body.MaxInstances == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_instances must be positive when set"})
    }
    // Validate the rule up front so a series can never be persisted
    // with a recurrence its calculator would later reject.
    ruleValue := string(body.Recurrence)
    if ruleValue == "null" {
        ruleValue = ""
    }
    if _, err := recurrence.Parse(body.RecurrenceType, ruleValue); err != nil {
        return engineError(c, err)
    }

    s := &model.Series{
        Title:           body.Title,
        Description:     body.Description,
        Location:        body.Location,
        RecurrenceType:  body.RecurrenceType,
        RecurrenceValue: ruleValue,
        StartDate:       startDate.UTC(),
        EndDate:         endDate,
        MaxInstances:    body.MaxInstances,
        DurationMinutes: body.DurationMinutes,
        OrganizationID:  orgID,
        CreatorID:       userID,
    }
    if err := h.SeriesRepo.Create(c.Request().Context(), s); err != nil {
        return engineError(c, err)
    }
    return c.JSON(http.StatusCreated, toSeriesResponse(s))
}

// UpdateStatus handles POST /v1/series/:id/status with a body of
// {"action": "pause"|"resume"|"cancel"}.  The transition is validated
// by the state machine and applied with a conditional update, so a
// command racing another writer fails with 409 instead of silently
// overwriting.  Cancelling never deletes instances: history stays
// intact and listable.
func (h *OrganizerHandler) UpdateStatus(c echo.Context) error {
    id, err := parseSeriesID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid series id"})
    }
    var body struct {
        Action string `json:"action"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    cmd, err := series.ParseCommand(body.Action)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "code": "invalid_action"})
    }
    s, err := h.ownSeries(c, id)
    if err != nil {
        return engineError(c, err)
    }
    next, err := series.Apply(s.Status, cmd)
    if err != nil {
        return engineError(c, err)
    }
    if err := h.SeriesRepo.UpdateStatusFrom(c.Request().Context(), s.ID, s.Status, next); err != nil {
        return engineError(c, err)
    }
    s.Status = next
    return c.JSON(http.StatusOK, toSeriesResponse(s))
}

// CreateNextInstance handles POST /v1/series/:id/instances, the
// organizer's explicit "create next" trigger.  It funnels into the
// same entry point as the automatic chaining consumer, so both paths
// share one concurrency guard and the instance.created /
// series.completed events are published by that shared wrapper, not
// here.  Responses:
//
//	201 with the instance            on success
//	200 with {"completed": true}     when a bound completed the series
//	409 code=series_not_active       when paused/cancelled/completed
//	409 code=concurrent_modification when a racing caller won; retry
func (h *OrganizerHandler) CreateNextInstance(c echo.Context) error {
    id, err := parseSeriesID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid series id"})
    }
    s, err := h.ownSeries(c, id)
    if err != nil {
        return engineError(c, err)
    }
    inst, err := h.Generator.CreateNext(c.Request().Context(), s.ID)
    if errors.Is(err, series.ErrSeriesCompleted) {
        // Expected terminal outcome, not a failure.
        return c.JSON(http.StatusOK, echo.Map{"series_id": s.ID, "completed": true, "status": model.SeriesCompleted})
    }
    if err != nil {
        return engineError(c, err)
    }
    return c.JSON(http.StatusCreated, toInstanceResponse(inst))
}
