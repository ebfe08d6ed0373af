package repository

import (
    "context"
    "database/sql"

    "github.com/greenbridge/eco-volunteer/internal/series"
)

// RegistrationRepo reads volunteer registration and attendance
// figures recorded by the external registration subsystem.  The
// engine never writes these rows; they feed the stats aggregator as
// opaque counts.
type RegistrationRepo struct {
    db *sql.DB
}

// NewRegistrationRepo constructs a RegistrationRepo with the given DB handle.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo {
    return &RegistrationRepo{db: db}
}

// ActivityBySeries returns per-instance registration and attendance
// counts for every instance of the series.  Attendance stays nil for
// instances where no volunteer has been marked either way yet, so the
// stats aggregator can exclude them from the attendance mean.
// Instances with no registrations at all are simply absent from the
// map.
func (r *RegistrationRepo) ActivityBySeries(ctx context.Context, seriesID uint64) (map[uint64]series.InstanceActivity, error) {
    const q = `SELECT ir.instance_id,
                      COUNT(*),
                      SUM(CASE WHEN ir.attended = 1 THEN 1 ELSE 0 END),
                      SUM(CASE WHEN ir.attended IS NOT NULL THEN 1 ELSE 0 END)
               FROM instance_registrations ir
               JOIN event_instances ei ON ei.id = ir.instance_id
               WHERE ei.series_id = ?
               GROUP BY ir.instance_id`
    rows, err := r.db.QueryContext(ctx, q, seriesID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make(map[uint64]series.InstanceActivity)
    for rows.Next() {
        var instanceID uint64
        var volunteers, attended, marked int
        if err := rows.Scan(&instanceID, &volunteers, &attended, &marked); err != nil {
            return nil, err
        }
        act := series.InstanceActivity{Volunteers: volunteers}
        if marked > 0 {
            a := attended
            act.Attendance = &a
        }
        out[instanceID] = act
    }
    return out, rows.Err()
}
