package recurrence

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
    r, err := Parse("DAILY", "")
    require.NoError(t, err)
    require.Equal(t, Daily, r.Type)
    require.Equal(t, 1, r.Interval)

    r, err = Parse("WEEKLY", `{"interval": 2}`)
    require.NoError(t, err)
    require.Equal(t, Weekly, r.Type)
    require.Equal(t, 2, r.Interval)
}

func TestParse_MonthlyVariants(t *testing.T) {
    r, err := Parse("MONTHLY", `{"day_of_month": 31}`)
    require.NoError(t, err)
    require.Equal(t, 31, r.DayOfMonth)
    require.False(t, r.ByWeekday)

    r, err = Parse("MONTHLY", `{"ordinal": 3, "weekday": 6}`)
    require.NoError(t, err)
    require.True(t, r.ByWeekday)
    require.Equal(t, 3, r.Ordinal)
    require.Equal(t, time.Saturday, r.Weekday)

    r, err = Parse("MONTHLY", `{"interval": 2, "ordinal": -1, "weekday": 0}`)
    require.NoError(t, err)
    require.Equal(t, 2, r.Interval)
    require.Equal(t, -1, r.Ordinal)
    require.Equal(t, time.Sunday, r.Weekday)
}

func TestParse_Invalid(t *testing.T) {
    cases := []struct {
        name     string
        ruleType string
        value    string
    }{
        {"unknown type", "HOURLY", ""},
        {"zero interval", "DAILY", `{"interval": 0}`},
        {"negative interval", "WEEKLY", `{"interval": -2}`},
        {"garbage json", "DAILY", `{interval}`},
        {"monthly without selector", "MONTHLY", `{"interval": 1}`},
        {"monthly with both selectors", "MONTHLY", `{"day_of_month": 10, "ordinal": 2, "weekday": 1}`},
        {"monthly day out of range", "MONTHLY", `{"day_of_month": 32}`},
        {"monthly day zero", "MONTHLY", `{"day_of_month": 0}`},
        {"ordinal without weekday", "MONTHLY", `{"ordinal": 2}`},
        {"ordinal out of range", "MONTHLY", `{"ordinal": 6, "weekday": 1}`},
        {"weekday out of range", "MONTHLY", `{"ordinal": 2, "weekday": 7}`},
        {"selector on daily rule", "DAILY", `{"day_of_month": 10}`},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            _, err := Parse(tc.ruleType, tc.value)
            require.ErrorIs(t, err, ErrInvalidRule)
        })
    }
}
