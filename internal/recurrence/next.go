package recurrence

import (
    "fmt"
    "time"
)

// Span is a concrete start/end pair.  The calculator preserves the
// span's duration: Next always returns a span exactly as long as its
// reference.
type Span struct {
    Start time.Time
    End   time.Time
}

// Duration returns the length of the span.
func (s Span) Duration() time.Duration { return s.End.Sub(s.Start) }

// Next computes the occurrence that follows ref under the given rule.
// It is a pure function: no clock access, no mutation, identical
// inputs always yield identical outputs, so a retried creation
// attempt recomputes exactly the same candidate dates.
//
// Semantics per rule type:
//   - DAILY:   ref.Start + N days.
//   - WEEKLY:  ref.Start + N weeks (same weekday as the reference).
//   - MONTHLY by day-of-month: the rule's day N months later, clamped
//     to the last day of months that are too short (day 31 in June
//     becomes June 30).  Clamping works from the rule's day, not the
//     reference's, so a Jan 31 series yields Feb 28 and then Mar 31
//     rather than drifting to Mar 28.
//   - MONTHLY by ordinal weekday: the ordinal/weekday pair resolved
//     in the month N months later.  Ordinal 5 falls back to the last
//     such weekday in months that have only four.
//
// The time of day and location are taken from the reference start.
func Next(ref Span, rule Rule) (Span, error) {
    if rule.Interval < 1 {
        return Span{}, fmt.Errorf("%w: interval must be >= 1, got %d", ErrInvalidRule, rule.Interval)
    }
    var start time.Time
    switch rule.Type {
    case Daily:
        start = ref.Start.AddDate(0, 0, rule.Interval)
    case Weekly:
        start = ref.Start.AddDate(0, 0, 7*rule.Interval)
    case Monthly:
        y, m := addMonths(ref.Start.Year(), ref.Start.Month(), rule.Interval)
        var day int
        if rule.ByWeekday {
            day = ordinalWeekday(y, m, rule.Ordinal, rule.Weekday)
        } else {
            day = rule.DayOfMonth
            if last := daysIn(y, m); day > last {
                day = last
            }
        }
        h, min, sec := ref.Start.Clock()
        start = time.Date(y, m, day, h, min, sec, ref.Start.Nanosecond(), ref.Start.Location())
    default:
        return Span{}, fmt.Errorf("%w: unknown type %q", ErrInvalidRule, rule.Type)
    }
    return Span{Start: start, End: start.Add(ref.Duration())}, nil
}

// addMonths advances a year/month pair by n months without the date
// normalization that time.AddDate performs (Jan 31 + 1 month must not
// become Mar 2).
func addMonths(year int, month time.Month, n int) (int, time.Month) {
    total := int(month) - 1 + n
    return year + total/12, time.Month(total%12 + 1)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
    return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ordinalWeekday resolves an ordinal/weekday pair within a month and
// returns the matching day number.  Ordinal -1 selects the last such
// weekday; ordinal 5 is clamped to the last occurrence when the month
// has only four.
func ordinalWeekday(year int, month time.Month, ordinal int, weekday time.Weekday) int {
    first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
    // Day of the first occurrence of the weekday in this month.
    offset := (int(weekday) - int(first.Weekday()) + 7) % 7
    firstDay := 1 + offset
    last := daysIn(year, month)
    if ordinal == -1 {
        day := firstDay
        for day+7 <= last {
            day += 7
        }
        return day
    }
    day := firstDay + 7*(ordinal-1)
    for day > last {
        day -= 7
    }
    return day
}
