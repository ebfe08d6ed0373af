package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used by the claim helpers
    "strconv" // strconv converts strings to numeric types
    "time"    // time formats response timestamps

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/greenbridge/eco-volunteer/internal/model"
)

// claimID converts a context value set by the JWT middleware into a
// uint64.  Claims decoded from JSON arrive as float64; tokens minted
// by other services may carry strings.
func claimID(c echo.Context, key string) (uint64, error) {
    v := c.Get(key)
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid " + key + " in context")
}

// getUserID extracts the authenticated user's ID from the context.
func getUserID(c echo.Context) (uint64, error) {
    return claimID(c, "user_id")
}

// getOrgID extracts the authenticated user's organization ID from the
// context.
func getOrgID(c echo.Context) (uint64, error) {
    return claimID(c, "org_id")
}

// seriesResponse is the JSON shape of a series in API responses.
type seriesResponse struct {
    ID                    uint64             `json:"id"`
    Title                 string             `json:"title"`
    Description           string             `json:"description"`
    Location              string             `json:"location"`
    RecurrenceType        string             `json:"recurrence_type"`
    RecurrenceValue       string             `json:"recurrence_value"`
    StartDate             string             `json:"start_date"`
    EndDate               *string            `json:"end_date,omitempty"`
    MaxInstances          *uint32            `json:"max_instances,omitempty"`
    DurationMinutes       uint32             `json:"duration_minutes"`
    Status                model.SeriesStatus `json:"status"`
    TotalInstancesCreated uint64             `json:"total_instances_created"`
    OrganizationID        uint64             `json:"organization_id"`
    CreatorID             uint64             `json:"creator_id"`
    CreatedAt             string             `json:"created_at"`
}

// instanceResponse is the JSON shape of an instance in API responses.
type instanceResponse struct {
    ID            uint64 `json:"id"`
    SeriesID      uint64 `json:"series_id"`
    Number        uint64 `json:"recurring_instance_number"`
    Title         string `json:"title"`
    Description   string `json:"description"`
    Location      string `json:"location"`
    StartDateTime string `json:"start_datetime"`
    EndDateTime   string `json:"end_datetime"`
}

func toSeriesResponse(s *model.Series) seriesResponse {
    resp := seriesResponse{
        ID:                    s.ID,
        Title:                 s.Title,
        Description:           s.Description,
        Location:              s.Location,
        RecurrenceType:        s.RecurrenceType,
        RecurrenceValue:       s.RecurrenceValue,
        StartDate:             s.StartDate.UTC().Format(time.RFC3339),
        MaxInstances:          s.MaxInstances,
        DurationMinutes:       s.DurationMinutes,
        Status:                s.Status,
        TotalInstancesCreated: s.TotalInstancesCreated,
        OrganizationID:        s.OrganizationID,
        CreatorID:             s.CreatorID,
        CreatedAt:             s.CreatedAt.UTC().Format(time.RFC3339),
    }
    if s.EndDate != nil {
        iso := s.EndDate.UTC().Format(time.RFC3339)
        resp.EndDate = &iso
    }
    return resp
}

func toInstanceResponse(i *model.Instance) instanceResponse {
    return instanceResponse{
        ID:            i.ID,
        SeriesID:      i.SeriesID,
        Number:        i.Number,
        Title:         i.Title,
        Description:   i.Description,
        Location:      i.Location,
        StartDateTime: i.StartDateTime.UTC().Format(time.RFC3339),
        EndDateTime:   i.EndDateTime.UTC().Format(time.RFC3339),
    }
}

// parseSeriesID reads and validates the :id path parameter.
func parseSeriesID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid series id")
    }
    return id, nil
}
