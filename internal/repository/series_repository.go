// Package repository contains data access logic for the recurring
// event series engine. This file defines repository methods for the
// event_series table. A Series is the recurring template plus its
// lifecycle status and instance counter; the counter is only ever
// advanced through EngineStore's atomic claim, never through this
// repository.
package repository

import (
    "context"      // context for controlling query lifetime
    "database/sql" // sql provides DB abstraction
    "errors"       // errors for errors.Is comparisons

    "github.com/greenbridge/eco-volunteer/internal/model"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// SeriesRepo manages persistence for event series.
type SeriesRepo struct {
    db *sql.DB
}

// NewSeriesRepo constructs a SeriesRepo with the given DB handle.
func NewSeriesRepo(db *sql.DB) *SeriesRepo {
    return &SeriesRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *SeriesRepo) DB() *sql.DB {
    return r.db
}

// seriesColumns is the canonical column list scanned into a
// model.Series.  Keep scanSeries in sync with it.
const seriesColumns = `id, title, description, location, recurrence_type, recurrence_value,
       start_date, end_date, max_instances, duration_minutes, status,
       total_instances_created, organization_id, creator_id, created_at, updated_at`

// scanSeries scans one row into a model.Series, converting nullable
// columns into pointer fields.
func scanSeries(row interface{ Scan(...any) error }) (*model.Series, error) {
    var s model.Series
    var endDate sql.NullTime
    var maxInstances sql.NullInt64
    err := row.Scan(
        &s.ID, &s.Title, &s.Description, &s.Location, &s.RecurrenceType, &s.RecurrenceValue,
        &s.StartDate, &endDate, &maxInstances, &s.DurationMinutes, &s.Status,
        &s.TotalInstancesCreated, &s.OrganizationID, &s.CreatorID, &s.CreatedAt, &s.UpdatedAt,
    )
    if err != nil {
        return nil, err
    }
    if endDate.Valid {
        t := endDate.Time.UTC()
        s.EndDate = &t
    }
    if maxInstances.Valid {
        n := uint32(maxInstances.Int64)
        s.MaxInstances = &n
    }
    s.StartDate = s.StartDate.UTC()
    return &s, nil
}

// Create inserts a new series and assigns the generated ID back to
// the struct.  New series always begin ACTIVE with a zero counter;
// the DB defaults enforce both.  The caller must have validated the
// recurrence rule before persisting it.
func (r *SeriesRepo) Create(ctx context.Context, s *model.Series) error {
    const q = `INSERT INTO event_series
               (title, description, location, recurrence_type, recurrence_value,
                start_date, end_date, max_instances, duration_minutes, organization_id, creator_id)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    var endDate any
    if s.EndDate != nil {
        endDate = s.EndDate.UTC()
    }
    var maxInstances any
    if s.MaxInstances != nil {
        maxInstances = *s.MaxInstances
    }
    res, err := r.db.ExecContext(ctx, q,
        s.Title, s.Description, s.Location, s.RecurrenceType, s.RecurrenceValue,
        s.StartDate.UTC(), endDate, maxInstances, s.DurationMinutes, s.OrganizationID, s.CreatorID,
    )
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    s.ID = uint64(id)
    // Query back the full row to populate DB defaults (status, counter, timestamps).
    created, err := r.GetByID(ctx, s.ID)
    if err != nil {
        return err
    }
    *s = *created
    return nil
}

// GetByID loads a single series.  series.ErrSeriesNotFound is
// returned when no row matches.
func (r *SeriesRepo) GetByID(ctx context.Context, id uint64) (*model.Series, error) {
    const q = `SELECT ` + seriesColumns + ` FROM event_series WHERE id = ?`
    s, err := scanSeries(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, series.ErrSeriesNotFound
    }
    return s, err
}

// List returns all series, optionally filtered by status, ordered by
// creation time descending (newest first).  An empty status means no
// filter.  When no series exist, an empty slice is returned.
func (r *SeriesRepo) List(ctx context.Context, status model.SeriesStatus) ([]model.Series, error) {
    q := `SELECT ` + seriesColumns + ` FROM event_series`
    args := []any{}
    if status != "" {
        q += ` WHERE status = ?`
        args = append(args, status)
    }
    q += ` ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Series, 0)
    for rows.Next() {
        s, err := scanSeries(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *s)
    }
    return out, rows.Err()
}

// UpdateStatusFrom performs a conditional status transition: the row
// is only updated when its status still equals from.  This makes the
// check-then-act of the state machine a single atomic write, so two
// organizers racing to change the same series cannot both win.
// ErrStaleStatus is returned when the row was not in the expected
// state; the caller should re-read and re-validate the command.
func (r *SeriesRepo) UpdateStatusFrom(ctx context.Context, id uint64, from, to model.SeriesStatus) error {
    const q = `UPDATE event_series SET status = ?, updated_at = UTC_TIMESTAMP() WHERE id = ? AND status = ?`
    res, err := r.db.ExecContext(ctx, q, to, id, from)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // Either the series vanished or its status moved underneath us.
        if _, err := r.GetByID(ctx, id); err != nil {
            return err
        }
        return ErrStaleStatus
    }
    return nil
}
