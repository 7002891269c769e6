package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/playback"
)

// Feed reads lines from r, parses them and sends the commands to cmds until
// EOF or ctx is cancelled. cmds is closed on return. Parse errors are written
// to the parser's output and do not stop the feed.
//
// A read blocked on r is not interrupted by ctx; callers that need that
// close r.
func (p *Parser) Feed(ctx context.Context, r io.Reader, cmds chan<- playback.Command) error {
	defer close(cmds)
	_, logger := ctxlog.With(ctx, "component", "console")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd, err := p.Parse(scanner.Text())
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			logger.Debug("Rejected console input.", "line", scanner.Text(), "error", err)
			fmt.Fprintf(p.out, "error: %v\n", err)
			continue
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading console input: %w", err)
	}
	logger.Debug("Console input closed.")
	return nil
}
