// Package series implements the recurring event series engine: the
// lifecycle state machine, the termination bound checks, the instance
// generator and the statistics aggregator.  Persistence is reached
// through the Store interface so the engine itself stays free of SQL.
package series

import "errors"

// ErrSeriesNotFound indicates the requested series does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrSeriesNotFound = errors.New("series not found")

// ErrSeriesNotActive is returned when instance creation or a resume
// command is attempted while the series status forbids it.  No
// mutation is performed.  Handlers should translate this into an
// HTTP 409 response.
var ErrSeriesNotActive = errors.New("series is not active")

// ErrInvalidTransition is returned when a status command is not legal
// from the current state, such as resuming an active series or
// pausing a cancelled one.  Handlers should translate this into an
// HTTP 409 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConcurrentModification is returned when the atomic counter
// update lost a race against another writer.  The engine never
// retries on its own; callers may retry with backoff against the
// refreshed counter.
var ErrConcurrentModification = errors.New("series was modified concurrently")

// ErrSeriesCompleted signals that a creation attempt was blocked by a
// bound (max instance count or end date) and the series has been
// transitioned to COMPLETED.  This is an expected terminal outcome,
// not a failure; callers must treat it distinctly from errors.
var ErrSeriesCompleted = errors.New("series completed")
