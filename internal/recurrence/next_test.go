package recurrence

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"
)

func span(start time.Time, d time.Duration) Span {
    return Span{Start: start, End: start.Add(d)}
}

func TestNext_Daily(t *testing.T) {
    ref := span(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC), 2*time.Hour)

    next, err := Next(ref, Rule{Type: Daily, Interval: 1})
    require.NoError(t, err)
    require.Equal(t, time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC), next.Start)
    require.Equal(t, 2*time.Hour, next.Duration())

    next, err = Next(ref, Rule{Type: Daily, Interval: 3})
    require.NoError(t, err)
    require.Equal(t, time.Date(2025, time.March, 13, 9, 0, 0, 0, time.UTC), next.Start)
}

func TestNext_Weekly(t *testing.T) {
    // Reference is a Saturday; every weekly successor must stay a Saturday.
    ref := span(time.Date(2025, time.March, 8, 10, 30, 0, 0, time.UTC), 90*time.Minute)

    next, err := Next(ref, Rule{Type: Weekly, Interval: 1})
    require.NoError(t, err)
    require.Equal(t, time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC), next.Start)
    require.Equal(t, time.Saturday, next.Start.Weekday())

    next, err = Next(ref, Rule{Type: Weekly, Interval: 2})
    require.NoError(t, err)
    require.Equal(t, time.Date(2025, time.March, 22, 10, 30, 0, 0, time.UTC), next.Start)
    require.Equal(t, time.Saturday, next.Start.Weekday())
    require.Equal(t, 90*time.Minute, next.Duration())
}

func TestNext_MonthlyDayOfMonth(t *testing.T) {
    cases := []struct {
        name string
        ref  time.Time
        rule Rule
        want time.Time
    }{
        {
            name: "plain advance",
            ref:  time.Date(2025, time.April, 15, 14, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, DayOfMonth: 15},
            want: time.Date(2025, time.May, 15, 14, 0, 0, 0, time.UTC),
        },
        {
            name: "clamps day 31 to a 30 day month",
            ref:  time.Date(2025, time.May, 31, 9, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, DayOfMonth: 31},
            want: time.Date(2025, time.June, 30, 9, 0, 0, 0, time.UTC),
        },
        {
            name: "clamps jan 31 to feb 28",
            ref:  time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, DayOfMonth: 31},
            want: time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC),
        },
        {
            name: "clamps jan 31 to feb 29 in leap years",
            ref:  time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, DayOfMonth: 31},
            want: time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
        },
        {
            name: "recovers to day 31 after a clamped month",
            ref:  time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, DayOfMonth: 31},
            want: time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC),
        },
        {
            name: "multi month interval crosses a year boundary",
            ref:  time.Date(2025, time.November, 5, 18, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 3, DayOfMonth: 5},
            want: time.Date(2026, time.February, 5, 18, 0, 0, 0, time.UTC),
        },
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            next, err := Next(span(tc.ref, time.Hour), tc.rule)
            require.NoError(t, err)
            require.Equal(t, tc.want, next.Start)
            require.Equal(t, time.Hour, next.Duration())
        })
    }
}

func TestNext_MonthlyOrdinalWeekday(t *testing.T) {
    cases := []struct {
        name string
        ref  time.Time
        rule Rule
        want time.Time
    }{
        {
            name: "third saturday",
            ref:  time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC), // 3rd Saturday of March 2025
            rule: Rule{Type: Monthly, Interval: 1, Ordinal: 3, Weekday: time.Saturday, ByWeekday: true},
            want: time.Date(2025, time.April, 19, 8, 0, 0, 0, time.UTC),
        },
        {
            name: "first monday",
            ref:  time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, Ordinal: 1, Weekday: time.Monday, ByWeekday: true},
            want: time.Date(2025, time.July, 7, 7, 0, 0, 0, time.UTC),
        },
        {
            name: "last sunday",
            ref:  time.Date(2025, time.January, 26, 10, 0, 0, 0, time.UTC),
            rule: Rule{Type: Monthly, Interval: 1, Ordinal: -1, Weekday: time.Sunday, ByWeekday: true},
            want: time.Date(2025, time.February, 23, 10, 0, 0, 0, time.UTC),
        },
        {
            name: "fifth friday falls back to the last one",
            ref:  time.Date(2025, time.August, 29, 17, 0, 0, 0, time.UTC), // 5th Friday of August 2025
            rule: Rule{Type: Monthly, Interval: 1, Ordinal: 5, Weekday: time.Friday, ByWeekday: true},
            want: time.Date(2025, time.September, 26, 17, 0, 0, 0, time.UTC), // September has four Fridays
        },
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            next, err := Next(span(tc.ref, 2*time.Hour), tc.rule)
            require.NoError(t, err)
            require.Equal(t, tc.want, next.Start)
        })
    }
}

func TestNext_Deterministic(t *testing.T) {
    ref := span(time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC), time.Hour)
    rule := Rule{Type: Monthly, Interval: 1, DayOfMonth: 31}
    a, err := Next(ref, rule)
    require.NoError(t, err)
    b, err := Next(ref, rule)
    require.NoError(t, err)
    require.Equal(t, a, b)
}

func TestNext_RejectsNonAdvancingRules(t *testing.T) {
    ref := span(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC), time.Hour)
    for _, interval := range []int{0, -1} {
        _, err := Next(ref, Rule{Type: Daily, Interval: interval})
        require.ErrorIs(t, err, ErrInvalidRule)
    }
    _, err := Next(ref, Rule{Type: "YEARLY", Interval: 1})
    require.ErrorIs(t, err, ErrInvalidRule)
}
