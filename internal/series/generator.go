package series

import (
    "context"
    "fmt"
    "time"

    "github.com/greenbridge/eco-volunteer/internal/model"
    "github.com/greenbridge/eco-volunteer/internal/recurrence"
)

// Store is the persistence surface the generator needs.  It is
// implemented by repository.EngineStore on top of MySQL; tests supply
// an in-memory implementation.
type Store interface {
    // Series loads a series by ID, returning ErrSeriesNotFound when it
    // does not exist.
    Series(ctx context.Context, id uint64) (*model.Series, error)

    // LatestInstance returns the instance with the highest number for
    // the series, or nil when none has been created yet.
    LatestInstance(ctx context.Context, seriesID uint64) (*model.Instance, error)

    // CompleteSeries transitions the series to COMPLETED, but only if
    // it is still ACTIVE at the moment of the write.  A series that is
    // already COMPLETED is treated as success so that racing creators
    // agree on the outcome.  Any other status yields ErrSeriesNotActive.
    CompleteSeries(ctx context.Context, seriesID uint64) error

    // InsertInstance atomically advances the series counter from
    // expectedCount to expectedCount+1 and persists inst in the same
    // transaction.  The status check and the counter compare are part
    // of the write itself: a series that is no longer ACTIVE yields
    // ErrSeriesNotActive, and a counter that has moved past
    // expectedCount yields ErrConcurrentModification.  Either way
    // nothing is persisted.
    InsertInstance(ctx context.Context, expectedCount uint64, inst *model.Instance) error
}

// Generator creates the next instance of a series.  It is the single
// entry point for both the organizer's explicit "create next" action
// and the automatic chaining triggered by the event-completed queue,
// so the concurrency guard in InsertInstance covers both paths.
type Generator struct {
    store Store
}

// NewGenerator constructs a Generator.  The store must be non-nil.
func NewGenerator(store Store) *Generator {
    if store == nil {
        panic("nil store passed to NewGenerator")
    }
    return &Generator{store: store}
}

// CreateNext creates the next instance of the series, or completes
// the series when a termination bound is reached.
//
// Outcomes:
//   - (*Instance, nil) on success; the instance carries the next
//     gap-free number and dates computed from the recurrence rule.
//   - (nil, ErrSeriesCompleted) when the candidate was blocked by a
//     bound; the COMPLETED transition has been persisted.
//   - (nil, ErrSeriesNotActive) when the series is paused, cancelled
//     or completed; nothing is mutated.
//   - (nil, ErrConcurrentModification) when a racing caller won the
//     counter update; the caller may retry, the engine does not.
//   - (nil, recurrence.ErrInvalidRule) on a malformed rule; nothing
//     is mutated.
func (g *Generator) CreateNext(ctx context.Context, seriesID uint64) (*model.Instance, error) {
    s, err := g.store.Series(ctx, seriesID)
    if err != nil {
        return nil, err
    }
    if s.Status != model.SeriesActive {
        return nil, fmt.Errorf("%w: status is %s", ErrSeriesNotActive, s.Status)
    }

    candidate, err := g.candidate(ctx, s)
    if err != nil {
        return nil, err
    }

    if CheckBounds(s, candidate.Start).Blocked() {
        // Reaching a bound is the designed end of the series' life; the
        // COMPLETED write is intentional even though no instance results.
        if err := g.store.CompleteSeries(ctx, s.ID); err != nil {
            return nil, err
        }
        return nil, ErrSeriesCompleted
    }

    inst := &model.Instance{
        SeriesID:      s.ID,
        Number:        s.TotalInstancesCreated + 1,
        Title:         s.Title,
        Description:   s.Description,
        Location:      s.Location,
        StartDateTime: candidate.Start,
        EndDateTime:   candidate.End,
    }
    if err := g.store.InsertInstance(ctx, s.TotalInstancesCreated, inst); err != nil {
        return nil, err
    }
    return inst, nil
}

// Preview describes the next occurrence that CreateNext would
// attempt, without persisting anything.
type Preview struct {
    Status        model.SeriesStatus
    NextNumber    uint64
    StartDateTime time.Time
    EndDateTime   time.Time
    Bound         BoundResult
}

// PreviewNext computes the candidate dates and bound verdict for the
// series' next instance.  It works for any status so that organizers
// can inspect paused or finished series; only the verdict of an
// ACTIVE series is actionable.
func (g *Generator) PreviewNext(ctx context.Context, seriesID uint64) (*Preview, error) {
    s, err := g.store.Series(ctx, seriesID)
    if err != nil {
        return nil, err
    }
    candidate, err := g.candidate(ctx, s)
    if err != nil {
        return nil, err
    }
    return &Preview{
        Status:        s.Status,
        NextNumber:    s.TotalInstancesCreated + 1,
        StartDateTime: candidate.Start,
        EndDateTime:   candidate.End,
        Bound:         CheckBounds(s, candidate.Start),
    }, nil
}

// candidate determines the next occurrence's span.  The first
// instance always lands on the series' start date with the template
// duration; every later instance is computed from the most recently
// created one so retries recompute identical dates.
func (g *Generator) candidate(ctx context.Context, s *model.Series) (recurrence.Span, error) {
    ref, err := g.store.LatestInstance(ctx, s.ID)
    if err != nil {
        return recurrence.Span{}, err
    }
    duration := time.Duration(s.DurationMinutes) * time.Minute
    if ref == nil {
        return recurrence.Span{Start: s.StartDate, End: s.StartDate.Add(duration)}, nil
    }
    rule, err := recurrence.Parse(s.RecurrenceType, s.RecurrenceValue)
    if err != nil {
        return recurrence.Span{}, err
    }
    return recurrence.Next(recurrence.Span{Start: ref.StartDateTime, End: ref.EndDateTime}, rule)
}
