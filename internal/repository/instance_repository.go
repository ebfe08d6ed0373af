package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

// InstanceRepo provides read access to generated event instances.
// Instances are only ever written through EngineStore's atomic claim,
// which is why this repository exposes no unconditional insert.
type InstanceRepo struct {
    db *sql.DB
}

// NewInstanceRepo constructs an InstanceRepo with the given DB handle.
func NewInstanceRepo(db *sql.DB) *InstanceRepo {
    return &InstanceRepo{db: db}
}

// instanceColumns is the canonical column list scanned into a
// model.Instance.
const instanceColumns = `id, series_id, recurring_instance_number, title, description, location,
       start_datetime, end_datetime, created_at`

func scanInstance(row interface{ Scan(...any) error }) (*model.Instance, error) {
    var i model.Instance
    err := row.Scan(
        &i.ID, &i.SeriesID, &i.Number, &i.Title, &i.Description, &i.Location,
        &i.StartDateTime, &i.EndDateTime, &i.CreatedAt,
    )
    if err != nil {
        return nil, err
    }
    i.StartDateTime = i.StartDateTime.UTC()
    i.EndDateTime = i.EndDateTime.UTC()
    return &i, nil
}

// ListBySeries returns all instances of a series ordered by instance
// number ascending.  Ordering by the number rather than the primary
// key keeps the sequence stable even if rows were backfilled.  When
// no instances exist, an empty slice is returned.
func (r *InstanceRepo) ListBySeries(ctx context.Context, seriesID uint64) ([]model.Instance, error) {
    const q = `SELECT ` + instanceColumns + `
               FROM event_instances
               WHERE series_id = ?
               ORDER BY recurring_instance_number ASC`
    rows, err := r.db.QueryContext(ctx, q, seriesID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Instance, 0)
    for rows.Next() {
        i, err := scanInstance(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *i)
    }
    return out, rows.Err()
}

// LatestBySeries returns the instance with the highest number for the
// series, or nil when the series has no instances yet.
func (r *InstanceRepo) LatestBySeries(ctx context.Context, seriesID uint64) (*model.Instance, error) {
    const q = `SELECT ` + instanceColumns + `
               FROM event_instances
               WHERE series_id = ?
               ORDER BY recurring_instance_number DESC
               LIMIT 1`
    i, err := scanInstance(r.db.QueryRowContext(ctx, q, seriesID))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, nil
    }
    return i, err
}
