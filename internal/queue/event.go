package queue

// EventCompletedSignal is consumed from the event.completed queue.
// The event subsystem publishes it when an instance's end time has
// passed and attendance has been closed; if the series is still
// active the engine chains the next instance in response.
type EventCompletedSignal struct {
    SeriesID    uint64 `json:"series_id"`
    InstanceID  uint64 `json:"instance_id"`
    CompletedAt string `json:"completed_at"`
}

// InstanceCreatedEvent is published after the engine persists a new
// instance.  It carries enough information for downstream consumers
// (notifications, analytics) to act without querying the primary
// database.
type InstanceCreatedEvent struct {
    InstanceID     uint64 `json:"instance_id"`
    SeriesID       uint64 `json:"series_id"`
    Number         uint64 `json:"recurring_instance_number"`
    Title          string `json:"title"`
    Location       string `json:"location"`
    StartDateTime  string `json:"start_datetime"`
    EndDateTime    string `json:"end_datetime"`
    OrganizationID uint64 `json:"organization_id"`
}

// SeriesCompletedEvent is published when a creation attempt was
// blocked by a bound and the series transitioned to COMPLETED.
type SeriesCompletedEvent struct {
    SeriesID       uint64 `json:"series_id"`
    Title          string `json:"title"`
    OrganizationID uint64 `json:"organization_id"`
    CompletedAt    string `json:"completed_at"`
}
