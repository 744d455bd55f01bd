package termui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/round"
)

// Loop steps game every tick with the keys pressed since the previous
// tick and redraws the screen. It returns when the round quits, the
// context ends or the screen stops delivering events.
func Loop(ctx context.Context, screen tcell.Screen, game *round.Round, tick time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := NewRenderer(screen)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events, _ := pollEvents(ctx, screen, 64)

	var pending round.Intent
	last := time.Now()
	renderer.Draw(game)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsRestart(ev.Key(), ev.Rune()) && game.Phase() == round.ToppedOut {
					game.Reset()
					pending = 0
					continue
				}
				pending |= KeyIntent(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			game.Step(pending, now.Sub(last))
			last = now
			pending = 0
			game.Events()
			renderer.Draw(game)
			if game.Quit() {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx
// ends. done closes when the polling goroutine has exited.
func pollEvents(ctx context.Context, screen tcell.Screen, buffer int) (events <-chan tcell.Event, done <-chan struct{}) {
	out := make(chan tcell.Event, buffer)
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, exited
}
