package repository

import (
    "context"
    "database/sql"
    "errors"
    "fmt"

    "github.com/greenbridge/eco-volunteer/internal/model"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// EngineStore implements series.Store on MySQL.  The critical piece
// is InsertInstance: the status re-check, the counter compare, the
// counter increment and the instance insert all happen inside one
// transaction, so two racing creators can never both claim the same
// instance number and an in-flight creation can never outrun a
// concurrent cancel.
type EngineStore struct {
    db           *sql.DB
    seriesRepo   *SeriesRepo
    instanceRepo *InstanceRepo
}

// NewEngineStore constructs an EngineStore.  All dependencies must be
// non-nil.
func NewEngineStore(db *sql.DB, seriesRepo *SeriesRepo, instanceRepo *InstanceRepo) *EngineStore {
    if db == nil || seriesRepo == nil || instanceRepo == nil {
        panic("nil dependency passed to NewEngineStore")
    }
    return &EngineStore{db: db, seriesRepo: seriesRepo, instanceRepo: instanceRepo}
}

// Series loads a series by ID.
func (s *EngineStore) Series(ctx context.Context, id uint64) (*model.Series, error) {
    return s.seriesRepo.GetByID(ctx, id)
}

// LatestInstance returns the most recently created instance of the
// series, or nil when none exists yet.
func (s *EngineStore) LatestInstance(ctx context.Context, seriesID uint64) (*model.Instance, error) {
    return s.instanceRepo.LatestBySeries(ctx, seriesID)
}

// CompleteSeries transitions the series to COMPLETED if it is still
// ACTIVE.  A series that is already COMPLETED counts as success so
// that two creators racing into the same bound agree on the outcome;
// any other status means an explicit command (pause or cancel) won
// the race, and the caller gets ErrSeriesNotActive.
func (s *EngineStore) CompleteSeries(ctx context.Context, seriesID uint64) error {
    err := s.seriesRepo.UpdateStatusFrom(ctx, seriesID, model.SeriesActive, model.SeriesCompleted)
    if err == nil {
        return nil
    }
    if !errors.Is(err, ErrStaleStatus) {
        return err
    }
    current, err := s.seriesRepo.GetByID(ctx, seriesID)
    if err != nil {
        return err
    }
    if current.Status == model.SeriesCompleted {
        return nil
    }
    return fmt.Errorf("%w: status is %s", series.ErrSeriesNotActive, current.Status)
}

// InsertInstance atomically advances the series counter and persists
// the instance.  The conditional UPDATE is the sole correctness
// mechanism for gap-free numbering: it only matches when the series
// is still ACTIVE and its counter still equals expectedCount, so a
// read-then-write race is impossible by construction.
func (s *EngineStore) InsertInstance(ctx context.Context, expectedCount uint64, inst *model.Instance) error {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const claim = `UPDATE event_series
                   SET total_instances_created = total_instances_created + 1,
                       updated_at = UTC_TIMESTAMP()
                   WHERE id = ? AND total_instances_created = ? AND status = ?`
    res, err := tx.ExecContext(ctx, claim, inst.SeriesID, expectedCount, model.SeriesActive)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // The claim missed: find out whether the status moved or the
        // counter did, still inside the same transaction.
        const sel = `SELECT status, total_instances_created FROM event_series WHERE id = ?`
        var status model.SeriesStatus
        var count uint64
        err := tx.QueryRowContext(ctx, sel, inst.SeriesID).Scan(&status, &count)
        if errors.Is(err, sql.ErrNoRows) {
            return series.ErrSeriesNotFound
        }
        if err != nil {
            return err
        }
        if status != model.SeriesActive {
            return fmt.Errorf("%w: status is %s", series.ErrSeriesNotActive, status)
        }
        return series.ErrConcurrentModification
    }

    const ins = `INSERT INTO event_instances
                 (series_id, recurring_instance_number, title, description, location, start_datetime, end_datetime)
                 VALUES (?, ?, ?, ?, ?, ?, ?)`
    resIns, err := tx.ExecContext(ctx, ins,
        inst.SeriesID, inst.Number, inst.Title, inst.Description, inst.Location,
        inst.StartDateTime.UTC(), inst.EndDateTime.UTC(),
    )
    if err != nil {
        return err
    }
    id, err := resIns.LastInsertId()
    if err != nil {
        return err
    }
    inst.ID = uint64(id)

    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
