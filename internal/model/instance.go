package model

import "time"

// Instance is one concrete, dated occurrence generated from a series.
// Title, description and location are copied from the series template
// at creation time, so later edits to the series never rewrite
// history.  Volunteer registrations are owned by the registration
// subsystem; the engine only reads their counts for statistics.
//
// Fields:
//  ID            – primary key identifier.
//  SeriesID      – back-reference to the owning series.
//  Number        – 1-based position within the series; strictly
//                  increasing with no gaps, assigned atomically with
//                  the series counter increment.
//  Title         – copied from the series at creation time.
//  Description   – copied from the series at creation time.
//  Location      – copied from the series at creation time.
//  StartDateTime – computed occurrence start.
//  EndDateTime   – computed occurrence end.
//  CreatedAt     – creation timestamp.
type Instance struct {
    ID            uint64    // event_instances.id
    SeriesID      uint64    // event_instances.series_id
    Number        uint64    // event_instances.recurring_instance_number
    Title         string    // event_instances.title
    Description   string    // event_instances.description
    Location      string    // event_instances.location
    StartDateTime time.Time // event_instances.start_datetime
    EndDateTime   time.Time // event_instances.end_datetime
    CreatedAt     time.Time // event_instances.created_at
}
