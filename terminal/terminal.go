// Package terminal owns the tcell screen and turns its key events into input state
package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/input"
)

// ErrNotTerminal is returned when stdin or stdout is redirected
var ErrNotTerminal = errors.New("aninmals needs an interactive terminal")

// Terminal wraps the tcell screen
type Terminal struct {
	screen tcell.Screen
}

// New initializes the screen and registers its teardown with the crash handler
func New() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	core.SetCrashReset(screen.Fini)
	return &Terminal{screen: screen}, nil
}

// Screen returns the underlying tcell screen for rendering
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Fini restores the terminal
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Poll forwards key events until ctx is cancelled: player keys go to keys,
// host control keys to control
// Runs on its own goroutine; control must be safe to call from it
func (t *Terminal) Poll(ctx context.Context, keys *input.State, control func(input.Key)) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() {
		t.screen.ChannelEvents(events, quit)
	})

	for {
		select {
		case <-ctx.Done():
			close(quit)
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					control(input.KeyQuit)
					continue
				}
				k, ok := TranslateKey(ev.Key(), ev.Rune())
				if !ok {
					continue
				}
				if input.IsControl(k) {
					control(k)
					continue
				}
				keys.Press(k)
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}
}
