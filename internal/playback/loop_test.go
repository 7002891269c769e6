package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/specialistvlad/graphstep/internal/traversal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_QuitCommand(t *testing.T) {
	c, _, _ := newTestController(t, pathGraph(t))
	cmds := make(chan Command, 2)
	cmds <- func(ctx context.Context, c *Controller) error {
		c.Step(ctx)
		return nil
	}
	cmds <- func(context.Context, *Controller) error { return ErrQuit }

	require.NoError(t, c.Run(context.Background(), cmds))
	assert.Equal(t, Paused, c.State())
}

func TestRun_FailedCommandKeepsLooping(t *testing.T) {
	c, _, _ := newTestController(t, pathGraph(t))
	cmds := make(chan Command, 3)
	ran := false
	cmds <- func(context.Context, *Controller) error { return errors.New("nope") }
	cmds <- func(context.Context, *Controller) error { ran = true; return nil }
	close(cmds)

	require.NoError(t, c.Run(context.Background(), cmds))
	assert.True(t, ran)
}

func TestRun_DrainsPlaybackAfterInputCloses(t *testing.T) {
	rec := &recorder{}
	c, err := New(pathGraph(t), rec, Config{Algorithm: traversal.BFS, Start: "A", Interval: time.Millisecond})
	require.NoError(t, err)

	cmds := make(chan Command, 1)
	cmds <- func(ctx context.Context, c *Controller) error {
		c.Start(ctx, traversal.BFS, "A")
		return nil
	}
	close(cmds)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Run(ctx, cmds))

	assert.Equal(t, Finished, c.State())
	require.Len(t, rec.frames, 10)
	assert.True(t, rec.frames[9].Step.IsDone())
}

func TestRun_ContextCancel(t *testing.T) {
	c, _, _ := newTestController(t, pathGraph(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, c.Run(ctx, make(chan Command)))
}
