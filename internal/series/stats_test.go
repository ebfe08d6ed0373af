package series

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

func TestComputeStats(t *testing.T) {
    now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

    // Instance 1 ended yesterday, instance 2 is in progress right now,
    // instance 3 starts tomorrow.  Two volunteers registered on each.
    instances := []model.Instance{
        {ID: 1, Number: 1, StartDateTime: now.AddDate(0, 0, -1), EndDateTime: now.AddDate(0, 0, -1).Add(2 * time.Hour)},
        {ID: 2, Number: 2, StartDateTime: now.Add(-time.Hour), EndDateTime: now.Add(time.Hour)},
        {ID: 3, Number: 3, StartDateTime: now.AddDate(0, 0, 1), EndDateTime: now.AddDate(0, 0, 1).Add(2 * time.Hour)},
    }
    attended := 2
    activity := map[uint64]InstanceActivity{
        1: {Volunteers: 2, Attendance: &attended},
        2: {Volunteers: 2},
        3: {Volunteers: 2},
    }

    st := ComputeStats(instances, activity, now)
    require.Equal(t, 3, st.TotalInstances)
    require.Equal(t, 1, st.CompletedInstances, "only the strictly past instance is completed")
    require.Equal(t, 1, st.UpcomingInstances, "only the strictly future instance is upcoming")
    require.Equal(t, 6, st.TotalRegistrations)
    require.Equal(t, 2.0, st.AverageAttendance, "one instance with recorded attendance of 2")
}

func TestComputeStats_NoAttendanceRecorded(t *testing.T) {
    now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
    instances := []model.Instance{
        {ID: 1, StartDateTime: now.AddDate(0, 0, -2), EndDateTime: now.AddDate(0, 0, -2).Add(time.Hour)},
    }
    st := ComputeStats(instances, map[uint64]InstanceActivity{1: {Volunteers: 4}}, now)
    require.Equal(t, 4, st.TotalRegistrations)
    require.Equal(t, 0.0, st.AverageAttendance, "no recorded attendance must not divide by zero")
}

func TestComputeStats_AverageOverMarkedInstancesOnly(t *testing.T) {
    now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
    past := func(days int) model.Instance {
        start := now.AddDate(0, 0, -days)
        return model.Instance{ID: uint64(days), StartDateTime: start, EndDateTime: start.Add(time.Hour)}
    }
    instances := []model.Instance{past(1), past(2), past(3)}
    a1, a2 := 3, 5
    activity := map[uint64]InstanceActivity{
        1: {Volunteers: 3, Attendance: &a1},
        2: {Volunteers: 5, Attendance: &a2},
        3: {Volunteers: 4}, // attendance never marked; excluded from the mean
    }
    st := ComputeStats(instances, activity, now)
    require.Equal(t, 4.0, st.AverageAttendance)
}

func TestComputeStats_IdempotentRead(t *testing.T) {
    now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
    instances := []model.Instance{
        {ID: 1, StartDateTime: now.AddDate(0, 0, 1), EndDateTime: now.AddDate(0, 0, 1).Add(time.Hour)},
    }
    activity := map[uint64]InstanceActivity{1: {Volunteers: 2}}
    require.Equal(t, ComputeStats(instances, activity, now), ComputeStats(instances, activity, now))
}

func TestComputeStats_Empty(t *testing.T) {
    st := ComputeStats(nil, nil, time.Now())
    require.Equal(t, Stats{}, st)
}
