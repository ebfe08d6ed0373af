// Package recurrence implements the pure occurrence calculator for
// recurring event series.  A Rule describes how one occurrence
// follows another (every N days, every N weeks, monthly on a fixed
// day, or monthly on an ordinal weekday such as "3rd Saturday").
// The package has no state and never consults the wall clock, so
// identical inputs always produce identical outputs.
package recurrence

import (
    "encoding/json"
    "errors"
    "fmt"
    "time"
)

// Type identifies the recurrence family of a rule.  The values match
// the event_series.recurrence_type column.
type Type string

const (
    Daily   Type = "DAILY"
    Weekly  Type = "WEEKLY"
    Monthly Type = "MONTHLY"
)

// ErrInvalidRule indicates a malformed or unsupported recurrence rule.
// Callers should surface it as a validation error and never retry.
var ErrInvalidRule = errors.New("recurrence: invalid rule")

// Rule is the parsed form of a series' recurrence_value column.  For
// DAILY and WEEKLY rules only Interval is meaningful.  MONTHLY rules
// carry exactly one of:
//   - DayOfMonth: a fixed calendar day (1..31), clamped to the last
//     day of months that are too short, or
//   - Ordinal + Weekday: an ordinal weekday such as "3rd Saturday".
//     Ordinal 1..5 counts from the start of the month; -1 means the
//     last such weekday.
type Rule struct {
    Type       Type
    Interval   int // every N days/weeks/months; always >= 1 after Parse
    DayOfMonth int
    Ordinal    int
    Weekday    time.Weekday
    ByWeekday  bool // true when the monthly rule is ordinal-weekday based
}

// ruleJSON mirrors the JSON stored in recurrence_value.  Interval is a
// pointer so that an absent field (defaulting to 1) can be told apart
// from an explicit zero, which is rejected.
type ruleJSON struct {
    Interval   *int   `json:"interval,omitempty"`
    DayOfMonth *int   `json:"day_of_month,omitempty"`
    Ordinal    *int   `json:"ordinal,omitempty"`
    Weekday    *int   `json:"weekday,omitempty"` // 0=Sunday .. 6=Saturday
}

// Parse decodes and validates a recurrence rule from its stored JSON
// form.  An empty value is accepted and means "every 1 <unit>" for
// daily and weekly types; monthly rules must specify either a
// day_of_month or an ordinal/weekday pair.  Any violation yields an
// error wrapping ErrInvalidRule.
func Parse(ruleType string, value string) (Rule, error) {
    var t Type
    switch Type(ruleType) {
    case Daily, Weekly, Monthly:
        t = Type(ruleType)
    default:
        return Rule{}, fmt.Errorf("%w: unknown type %q", ErrInvalidRule, ruleType)
    }

    var raw ruleJSON
    if value != "" {
        if err := json.Unmarshal([]byte(value), &raw); err != nil {
            return Rule{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
        }
    }

    r := Rule{Type: t, Interval: 1}
    if raw.Interval != nil {
        if *raw.Interval < 1 {
            // A zero or negative step would never advance the date.
            return Rule{}, fmt.Errorf("%w: interval must be >= 1, got %d", ErrInvalidRule, *raw.Interval)
        }
        r.Interval = *raw.Interval
    }

    switch t {
    case Daily, Weekly:
        if raw.DayOfMonth != nil || raw.Ordinal != nil || raw.Weekday != nil {
            return Rule{}, fmt.Errorf("%w: day_of_month/ordinal/weekday are only valid for MONTHLY rules", ErrInvalidRule)
        }
    case Monthly:
        hasDay := raw.DayOfMonth != nil
        hasOrdinal := raw.Ordinal != nil || raw.Weekday != nil
        if hasDay == hasOrdinal {
            return Rule{}, fmt.Errorf("%w: MONTHLY rules require exactly one of day_of_month or ordinal+weekday", ErrInvalidRule)
        }
        if hasDay {
            if *raw.DayOfMonth < 1 || *raw.DayOfMonth > 31 {
                return Rule{}, fmt.Errorf("%w: day_of_month must be 1..31, got %d", ErrInvalidRule, *raw.DayOfMonth)
            }
            r.DayOfMonth = *raw.DayOfMonth
        } else {
            if raw.Ordinal == nil || raw.Weekday == nil {
                return Rule{}, fmt.Errorf("%w: ordinal and weekday must be provided together", ErrInvalidRule)
            }
            if (*raw.Ordinal < 1 || *raw.Ordinal > 5) && *raw.Ordinal != -1 {
                return Rule{}, fmt.Errorf("%w: ordinal must be 1..5 or -1, got %d", ErrInvalidRule, *raw.Ordinal)
            }
            if *raw.Weekday < 0 || *raw.Weekday > 6 {
                return Rule{}, fmt.Errorf("%w: weekday must be 0..6, got %d", ErrInvalidRule, *raw.Weekday)
            }
            r.Ordinal = *raw.Ordinal
            r.Weekday = time.Weekday(*raw.Weekday)
            r.ByWeekday = true
        }
    }
    return r, nil
}
