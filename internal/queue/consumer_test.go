package queue

import (
    "context"
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/greenbridge/eco-volunteer/internal/model"
    "github.com/greenbridge/eco-volunteer/internal/series"
)

// fakeChainer records calls and returns a scripted outcome.
type fakeChainer struct {
    calls []uint64
    inst  *model.Instance
    err   error
}

func (f *fakeChainer) CreateNext(_ context.Context, seriesID uint64) (*model.Instance, error) {
    f.calls = append(f.calls, seriesID)
    return f.inst, f.err
}

func signalBody(t *testing.T, seriesID uint64) []byte {
    t.Helper()
    b, err := json.Marshal(EventCompletedSignal{SeriesID: seriesID, InstanceID: 7, CompletedAt: "2025-06-01T11:00:00Z"})
    require.NoError(t, err)
    return b
}

func TestHandleSignal_ChainsNextInstance(t *testing.T) {
    f := &fakeChainer{inst: &model.Instance{ID: 8, SeriesID: 3, Number: 2}}
    requeue, err := handleSignal(f, signalBody(t, 3))
    require.NoError(t, err)
    require.False(t, requeue)
    require.Equal(t, []uint64{3}, f.calls)
}

func TestHandleSignal_ExpectedOutcomesAreAcked(t *testing.T) {
    for _, outcome := range []error{series.ErrSeriesCompleted, series.ErrSeriesNotActive, series.ErrSeriesNotFound} {
        f := &fakeChainer{err: outcome}
        requeue, err := handleSignal(f, signalBody(t, 3))
        require.NoError(t, err, "outcome %v must not be treated as a failure", outcome)
        require.False(t, requeue)
    }
}

func TestHandleSignal_LostRaceIsRequeued(t *testing.T) {
    f := &fakeChainer{err: series.ErrConcurrentModification}
    requeue, err := handleSignal(f, signalBody(t, 3))
    require.Error(t, err)
    require.True(t, requeue, "a lost counter race should be redelivered")
}

func TestHandleSignal_PoisonMessages(t *testing.T) {
    f := &fakeChainer{}

    requeue, err := handleSignal(f, []byte("{not json"))
    require.Error(t, err)
    require.False(t, requeue, "unparseable messages must not loop")
    require.Empty(t, f.calls)

    requeue, err = handleSignal(f, signalBody(t, 0))
    require.Error(t, err)
    require.False(t, requeue)
    require.Empty(t, f.calls)
}
