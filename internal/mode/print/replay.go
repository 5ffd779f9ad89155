// ABOUTME: Timed replay of a controller's history to a writer
// ABOUTME: A player goroutine steps and renders while a writer goroutine prints frames

package print

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/dsviz/internal/render"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/history"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const clearScreen = "\x1b[H\x1b[2J"

// Replay rewinds ctrl and plays its history forward every interval,
// writing each rendered step to w. With clearFrames set the screen is cleared
// before every frame. Cancelling ctx stops the replay without error.
func Replay(ctx context.Context, ctrl viz.Controller, interval time.Duration, w io.Writer, styles theme.Styles, clearFrames bool) error {
	for ctrl.StepBackward() {
	}

	frames := make(chan string, 1)
	draw := func() string {
		pos := ctrl.Position()
		return fmt.Sprintf("%s  step %d/%d\n%s\n",
			ctrl.Title(), pos.Cursor+1, pos.Len, render.Snapshot(ctrl.Snapshot(), styles))
	}

	g, gctx := errgroup.WithContext(ctx)

	// The controller is only touched by the player.
	g.Go(func() error {
		defer close(frames)
		select {
		case frames <- draw():
		case <-gctx.Done():
			return gctx.Err()
		}
		return history.Play(gctx, ctrl, interval, func() {
			select {
			case frames <- draw():
			case <-gctx.Done():
			}
		})
	})

	g.Go(func() error {
		for f := range frames {
			if clearFrames {
				f = clearScreen + f
			} else {
				f += "\n"
			}
			if _, err := io.WriteString(w, f); err != nil {
				return fmt.Errorf("writing replay frame: %w", err)
			}
		}
		return nil
	})

	err := g.Wait()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
