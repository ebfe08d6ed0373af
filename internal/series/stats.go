package series

import (
    "time"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

// InstanceActivity carries the registration and attendance figures
// for one instance, supplied by the external registration and
// attendance subsystems.  Attendance is nil until attendance has been
// marked for the instance.
type InstanceActivity struct {
    Volunteers int
    Attendance *int
}

// Stats summarizes the lifecycle of a series at a point in time.
type Stats struct {
    TotalInstances     int     `json:"total_instances"`
    CompletedInstances int     `json:"completed_instances"`
    UpcomingInstances  int     `json:"upcoming_instances"`
    TotalRegistrations int     `json:"total_registrations"`
    AverageAttendance  float64 `json:"average_attendance"`
}

// ComputeStats derives lifecycle statistics from a series' instances.
// It is pure and read-only: callers pass a consistent snapshot plus
// the evaluation time.  An instance that is in progress at now
// (start <= now <= end) is counted as neither completed nor upcoming.
// AverageAttendance is the mean over instances with recorded
// attendance, or 0 when none have any.
func ComputeStats(instances []model.Instance, activity map[uint64]InstanceActivity, now time.Time) Stats {
    var st Stats
    st.TotalInstances = len(instances)

    attended := 0
    attendedSum := 0
    for _, inst := range instances {
        if inst.EndDateTime.Before(now) {
            st.CompletedInstances++
        }
        if inst.StartDateTime.After(now) {
            st.UpcomingInstances++
        }
        act, ok := activity[inst.ID]
        if !ok {
            continue
        }
        st.TotalRegistrations += act.Volunteers
        if act.Attendance != nil {
            attended++
            attendedSum += *act.Attendance
        }
    }
    if attended > 0 {
        st.AverageAttendance = float64(attendedSum) / float64(attended)
    }
    return st
}
