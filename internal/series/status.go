package series

import (
    "fmt"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

// Command is an explicit organizer action on a series' lifecycle.
// Bound-driven completion is not a Command: the engine applies it
// internally during instance creation and it can never be requested
// from outside.
type Command string

const (
    Pause  Command = "pause"
    Resume Command = "resume"
    Cancel Command = "cancel"
)

// ParseCommand maps a request string onto a Command.
func ParseCommand(s string) (Command, error) {
    switch Command(s) {
    case Pause, Resume, Cancel:
        return Command(s), nil
    default:
        return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, s)
    }
}

// transition is one allowed edge of the lifecycle state machine.
type transition struct {
    from model.SeriesStatus
    cmd  Command
    to   model.SeriesStatus
}

// transitions is the closed set of legal command-driven edges.  The
// only edge missing here is ACTIVE -> COMPLETED, which is applied by
// the generator when a bound is reached, never by command.  Nothing
// leaves COMPLETED or CANCELLED.
var transitions = []transition{
    {from: model.SeriesActive, cmd: Pause, to: model.SeriesPaused},
    {from: model.SeriesPaused, cmd: Resume, to: model.SeriesActive},
    {from: model.SeriesActive, cmd: Cancel, to: model.SeriesCancelled},
    {from: model.SeriesPaused, cmd: Cancel, to: model.SeriesCancelled},
}

// Apply validates a status command against the current status and
// returns the resulting status.  Illegal edges yield
// ErrInvalidTransition and leave the caller's state untouched.
func Apply(current model.SeriesStatus, cmd Command) (model.SeriesStatus, error) {
    for _, t := range transitions {
        if t.from == current && t.cmd == cmd {
            return t.to, nil
        }
    }
    return "", fmt.Errorf("%w: cannot %s a %s series", ErrInvalidTransition, cmd, current)
}
