package series

import (
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/greenbridge/eco-volunteer/internal/model"
)

func TestApply_LegalTransitions(t *testing.T) {
    cases := []struct {
        from model.SeriesStatus
        cmd  Command
        to   model.SeriesStatus
    }{
        {model.SeriesActive, Pause, model.SeriesPaused},
        {model.SeriesPaused, Resume, model.SeriesActive},
        {model.SeriesActive, Cancel, model.SeriesCancelled},
        {model.SeriesPaused, Cancel, model.SeriesCancelled},
    }
    for _, tc := range cases {
        got, err := Apply(tc.from, tc.cmd)
        require.NoError(t, err)
        require.Equal(t, tc.to, got)
    }
}

func TestApply_IllegalTransitions(t *testing.T) {
    // Terminal states accept nothing; the rest reject redundant commands.
    cases := []struct {
        from model.SeriesStatus
        cmd  Command
    }{
        {model.SeriesActive, Resume},
        {model.SeriesPaused, Pause},
        {model.SeriesCompleted, Pause},
        {model.SeriesCompleted, Resume},
        {model.SeriesCompleted, Cancel},
        {model.SeriesCancelled, Pause},
        {model.SeriesCancelled, Resume},
        {model.SeriesCancelled, Cancel},
    }
    for _, tc := range cases {
        _, err := Apply(tc.from, tc.cmd)
        require.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", tc.cmd, tc.from)
    }
}

func TestParseCommand(t *testing.T) {
    for _, s := range []string{"pause", "resume", "cancel"} {
        cmd, err := ParseCommand(s)
        require.NoError(t, err)
        require.Equal(t, Command(s), cmd)
    }
    _, err := ParseCommand("complete")
    require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminal(t *testing.T) {
    require.True(t, model.SeriesCompleted.Terminal())
    require.True(t, model.SeriesCancelled.Terminal())
    require.False(t, model.SeriesActive.Terminal())
    require.False(t, model.SeriesPaused.Terminal())
}
