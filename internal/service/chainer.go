package queue_publisher

import (
    "context"
    "errors"
    "log"
    "time"

    "github.com/greenbridge/eco-volunteer/internal/model"
    q "github.com/greenbridge/eco-volunteer/internal/queue"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// nextCreator is the slice of the engine the wrapper drives.  It is
// satisfied by *series.Generator.
type nextCreator interface {
    CreateNext(ctx context.Context, seriesID uint64) (*model.Instance, error)
}

// seriesGetter loads a series so published events can carry its
// ownership fields.  It is satisfied by *repository.SeriesRepo.
type seriesGetter interface {
    GetByID(ctx context.Context, id uint64) (*model.Series, error)
}

// PublishingGenerator wraps the instance generator so that every
// successful engine outcome emits its lifecycle event, no matter
// which trigger invoked it.  Both the organizer's explicit "create
// next" request and the event.completed chaining consumer funnel
// through this wrapper, so downstream consumers (notifications,
// analytics) see chained occurrences as well as manual ones.
// Publish failures are logged and swallowed: by the time publishing
// runs the instance or the COMPLETED status is already persisted, and
// an unreachable broker must not make the creation look failed.
type PublishingGenerator struct {
    gen    nextCreator
    series seriesGetter

    // Swapped out in tests; default to the broker-backed publishers.
    publishInstanceCreated func(ctx context.Context, event q.InstanceCreatedEvent) error
    publishSeriesCompleted func(ctx context.Context, event q.SeriesCompletedEvent) error
}

// NewPublishingGenerator constructs a PublishingGenerator.  Both
// dependencies must be non-nil.
func NewPublishingGenerator(gen nextCreator, seriesRepo seriesGetter) *PublishingGenerator {
    if gen == nil || seriesRepo == nil {
        panic("nil dependency passed to NewPublishingGenerator")
    }
    return &PublishingGenerator{
        gen:                    gen,
        series:                 seriesRepo,
        publishInstanceCreated: PublishInstanceCreated,
        publishSeriesCompleted: PublishSeriesCompleted,
    }
}

// CreateNext delegates to the engine and publishes the matching
// lifecycle event: instance.created after a successful creation,
// series.completed after a bound ended the series' life.  Engine
// errors pass through unchanged.
func (p *PublishingGenerator) CreateNext(ctx context.Context, seriesID uint64) (*model.Instance, error) {
    inst, err := p.gen.CreateNext(ctx, seriesID)
    switch {
    case err == nil:
        p.announceInstanceCreated(ctx, inst)
    case errors.Is(err, series.ErrSeriesCompleted):
        p.announceSeriesCompleted(ctx, seriesID)
    }
    return inst, err
}

func (p *PublishingGenerator) announceInstanceCreated(ctx context.Context, inst *model.Instance) {
    s, err := p.series.GetByID(ctx, inst.SeriesID)
    if err != nil {
        log.Printf("instance-created publish skipped, series load failed: %v", err)
        return
    }
    if err := p.publishInstanceCreated(ctx, q.InstanceCreatedEvent{
        InstanceID:     inst.ID,
        SeriesID:       inst.SeriesID,
        Number:         inst.Number,
        Title:          inst.Title,
        Location:       inst.Location,
        StartDateTime:  inst.StartDateTime.UTC().Format(time.RFC3339),
        EndDateTime:    inst.EndDateTime.UTC().Format(time.RFC3339),
        OrganizationID: s.OrganizationID,
    }); err != nil {
        log.Printf("instance-created publish failed: %v", err)
    }
}

func (p *PublishingGenerator) announceSeriesCompleted(ctx context.Context, seriesID uint64) {
    s, err := p.series.GetByID(ctx, seriesID)
    if err != nil {
        log.Printf("series-completed publish skipped, series load failed: %v", err)
        return
    }
    if err := p.publishSeriesCompleted(ctx, q.SeriesCompletedEvent{
        SeriesID:       s.ID,
        Title:          s.Title,
        OrganizationID: s.OrganizationID,
        CompletedAt:    time.Now().UTC().Format(time.RFC3339),
    }); err != nil {
        log.Printf("series-completed publish failed: %v", err)
    }
}
