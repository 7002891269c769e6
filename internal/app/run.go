package app

import (
	"context"

	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/playback"
	"golang.org/x/sync/errgroup"
)

// Run drives the session: the playback loop, the console reader and the
// optional health check server. It returns when the user quits, the console
// input ends and playback is no longer running, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.logger.Debug("App.Run method started.")

	defer func() {
		if err := a.renderers.Close(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("Closing renderers failed.", "error", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	if a.config.HealthcheckPort > 0 {
		g.Go(func() error { return a.serveHealthcheck(gctx, a.config.HealthcheckPort) })
	} else {
		a.logger.Debug("Health check server not started: disabled")
	}

	var cmds chan playback.Command
	if a.inR != nil {
		cmds = make(chan playback.Command)
		// Not part of the group: a read blocked on the terminal cannot be
		// interrupted, and Feed returns on its own once ctx is done and it
		// tries to send.
		go func() {
			if err := a.parser.Feed(gctx, a.inR, cmds); err != nil {
				a.logger.Warn("Console input failed.", "error", err)
			}
		}()
	}

	if a.config.Autoplay {
		a.controller.Start(gctx, a.controller.Algorithm(), a.controller.StartNode())
	}

	// With the console disabled cmds is nil and the loop ends once the
	// autoplay run finishes.
	g.Go(func() error {
		defer cancel()
		return a.controller.Run(gctx, cmds)
	})

	err := g.Wait()
	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}
