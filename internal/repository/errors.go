// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure
// scenarios. For example, ErrForbidden indicates that the current
// user is not authorized to operate on a series owned by another
// organization, while ErrStaleStatus signals that a conditional
// status update lost a race against a concurrent writer.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// series owned by a different organization. Handlers should translate
// this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrStaleStatus is returned when a conditional status update matched
// no row because another writer changed the series first. Handlers
// should translate this into an HTTP 409 response and let the client
// re-read and retry.
var ErrStaleStatus = errors.New("stale status")
