package model

import "time"

// SeriesStatus enumerates the lifecycle states of a recurring event
// series.  Values are stored verbatim in the event_series.status
// column.  COMPLETED and CANCELLED are terminal; once a series
// reaches either state no further transitions are possible.
type SeriesStatus string

const (
    SeriesActive    SeriesStatus = "ACTIVE"    // generating new instances
    SeriesPaused    SeriesStatus = "PAUSED"    // generation suspended, resumable
    SeriesCompleted SeriesStatus = "COMPLETED" // a bound was reached; terminal
    SeriesCancelled SeriesStatus = "CANCELLED" // explicitly stopped by an organizer; terminal
)

// Terminal reports whether the status permits no further transitions.
func (s SeriesStatus) Terminal() bool {
    return s == SeriesCompleted || s == SeriesCancelled
}

// Series is the recurring template from which dated event instances
// are generated.  It carries the recurrence rule, the termination
// bounds and the lifecycle state.
//
// Fields:
//  ID                    – primary key identifier.
//  Title                 – event title, copied onto generated instances.
//  Description           – event description, copied onto instances.
//  Location              – venue text, copied onto instances.
//  RecurrenceType        – DAILY, WEEKLY or MONTHLY.
//  RecurrenceValue       – JSON encoding of the recurrence rule; parsed
//                          only by the recurrence package.
//  StartDate             – start of the first instance.
//  EndDate               – optional bound: no instance may start after it.
//  MaxInstances          – optional bound on how many instances may ever
//                          be created.
//  DurationMinutes       – default length of each generated instance.
//  Status                – current lifecycle state.
//  TotalInstancesCreated – monotonically increasing counter; the next
//                          instance number is always counter+1.  Never
//                          decremented, even if an instance is later
//                          removed by an external process.
//  OrganizationID        – owning organization (opaque to the engine).
//  CreatorID             – organizer who created the series.
//  CreatedAt             – creation timestamp.
//  UpdatedAt             – last update timestamp.
type Series struct {
    ID                    uint64       // event_series.id
    Title                 string       // event_series.title
    Description           string       // event_series.description
    Location              string       // event_series.location
    RecurrenceType        string       // event_series.recurrence_type
    RecurrenceValue       string       // event_series.recurrence_value (JSON)
    StartDate             time.Time    // event_series.start_date
    EndDate               *time.Time   // event_series.end_date (nullable)
    MaxInstances          *uint32      // event_series.max_instances (nullable)
    DurationMinutes       uint32       // event_series.duration_minutes
    Status                SeriesStatus // event_series.status
    TotalInstancesCreated uint64       // event_series.total_instances_created
    OrganizationID        uint64       // event_series.organization_id
    CreatorID             uint64       // event_series.creator_id
    CreatedAt             time.Time    // event_series.created_at
    UpdatedAt             time.Time    // event_series.updated_at
}
