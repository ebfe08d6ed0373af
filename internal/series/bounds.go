package series

import (
    "time"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

// BoundResult is the verdict of the bound checker for a candidate
// occurrence.  Anything other than Allowed means the series has
// exhausted its termination conditions and must be completed; the
// specific reason is informational only.
type BoundResult string

const (
    Allowed               BoundResult = "ALLOWED"
    BlockedByMaxInstances BoundResult = "BLOCKED_BY_MAX_INSTANCES"
    BlockedByEndDate      BoundResult = "BLOCKED_BY_END_DATE"
)

// Blocked reports whether the verdict forbids creating the candidate.
func (b BoundResult) Blocked() bool { return b != Allowed }

// CheckBounds decides whether a new occurrence starting at
// candidateStart is permitted under the series' termination
// conditions.  It is a pure predicate with no side effects.  When
// both bounds would block, the max-instances reason wins; callers
// only need to know "blocked" to trigger completion.
func CheckBounds(s *model.Series, candidateStart time.Time) BoundResult {
    if s.MaxInstances != nil && s.TotalInstancesCreated >= uint64(*s.MaxInstances) {
        return BlockedByMaxInstances
    }
    if s.EndDate != nil && candidateStart.After(*s.EndDate) {
        return BlockedByEndDate
    }
    return Allowed
}
