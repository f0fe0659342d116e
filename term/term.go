// Package term is the terminal front end. Key events are read on their own
// goroutine and posted to a game.Loop, which owns the session and renders
// through a Renderer.
package term

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/settings"
)

// Run plays on an initialized screen until ctx is done or the player presses
// Ctrl-C. Extra observers receive every notice and snapshot. The caller
// owns the screen and finalizes it.
func Run(ctx context.Context, screen tcell.Screen, cfg settings.Config, observers ...game.Observer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := NewRenderer(screen)
	opts := []game.Option{game.WithObserver(renderer)}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	for _, o := range observers {
		opts = append(opts, game.WithObserver(o))
	}

	loop := game.NewLoop(opts...)
	renderer.Render(loop.Session().Snapshot())

	done := make(chan struct{})
	go func() {
		defer close(done)
		pollKeys(screen, cfg.KeyEvents(), loop, cancel)
	}()

	err := loop.Run(ctx)

	if perr := screen.PostEvent(tcell.NewEventInterrupt(nil)); perr != nil {
		log.Printf("[Term] Warning: could not stop input: %v", perr)
	}
	<-done

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// pollKeys forwards key events until an interrupt arrives or the screen is
// finalized.
func pollKeys(screen tcell.Screen, keys map[string]game.Event, loop *game.Loop, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				quit()
				continue
			}
			name, ok := KeyName(ev)
			if !ok {
				continue
			}
			if e, ok := keys[name]; ok && !loop.Post(e) {
				log.Printf("[Term] Dropped %s: queue full", e)
			}
		}
	}
}
