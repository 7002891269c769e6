package playback

import (
	"context"
	"errors"

	"github.com/specialistvlad/graphstep/internal/ctxlog"
)

// ErrQuit is returned by a Command to stop the event loop cleanly.
var ErrQuit = errors.New("quit")

// Command is an operation executed on the event loop goroutine, the only
// place a Controller may be touched once Run has started.
type Command func(ctx context.Context, c *Controller) error

// Run is the playback event loop. It returns nil when a command returns
// ErrQuit, when ctx is cancelled, or when cmds is closed and the controller
// is no longer running.
func (c *Controller) Run(ctx context.Context, cmds <-chan Command) error {
	ctx, logger := ctxlog.With(ctx, "component", "playback")
	logger.Debug("Playback loop started.")
	defer c.stopTicker()

	for {
		if cmds == nil && c.state != Running {
			logger.Debug("Command source closed and playback idle, leaving loop.", "state", c.state.String())
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Debug("Playback loop cancelled.")
			return nil
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			if err := cmd(ctx, c); err != nil {
				if errors.Is(err, ErrQuit) {
					logger.Debug("Quit requested.")
					return nil
				}
				logger.Warn("Command failed.", "error", err)
			}
		case <-c.Ticks():
			c.Tick(ctx)
		}
	}
}
