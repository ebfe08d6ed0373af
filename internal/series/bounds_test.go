package series

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

func TestCheckBounds(t *testing.T) {
    start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
    end := start.AddDate(0, 0, 30)
    max := uint32(3)

    t.Run("unbounded series always allows", func(t *testing.T) {
        s := &model.Series{TotalInstancesCreated: 1000}
        require.Equal(t, Allowed, CheckBounds(s, start.AddDate(10, 0, 0)))
    })

    t.Run("max instances", func(t *testing.T) {
        s := &model.Series{MaxInstances: &max, TotalInstancesCreated: 2}
        require.Equal(t, Allowed, CheckBounds(s, start))
        s.TotalInstancesCreated = 3
        require.Equal(t, BlockedByMaxInstances, CheckBounds(s, start))
    })

    t.Run("end date", func(t *testing.T) {
        s := &model.Series{EndDate: &end}
        require.Equal(t, Allowed, CheckBounds(s, end), "a start exactly on the end date is permitted")
        require.Equal(t, BlockedByEndDate, CheckBounds(s, end.Add(time.Second)))
    })

    t.Run("both blocked reports max instances", func(t *testing.T) {
        s := &model.Series{MaxInstances: &max, TotalInstancesCreated: 3, EndDate: &end}
        verdict := CheckBounds(s, end.AddDate(0, 0, 1))
        require.True(t, verdict.Blocked())
        require.Equal(t, BlockedByMaxInstances, verdict)
    })

    t.Run("no side effects", func(t *testing.T) {
        s := &model.Series{MaxInstances: &max, TotalInstancesCreated: 3}
        before := *s
        CheckBounds(s, start)
        require.Equal(t, before, *s)
    })
}
