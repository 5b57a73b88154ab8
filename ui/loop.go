package ui

import (
	"context"
	"log"
	"time"

	"turn-snake/game"
	"turn-snake/game/types"
)

// Chirper plays the cue for eaten food.
type Chirper interface {
	Chirp()
}

// Loop drives a GameState from a Backend. The snake only moves when an
// arrow key is accepted; drawing and input polling run every frame.
type Loop struct {
	backend Backend
	state   *game.GameState
	sound   Chirper

	now   func() time.Time
	sleep func(time.Duration)
}

func NewLoop(backend Backend, state *game.GameState, sound Chirper) *Loop {
	return &Loop{
		backend: backend,
		state:   state,
		sound:   sound,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Run shows the splash frame and then renders frames until a quit event,
// the Escape key, or ctx cancellation.
func (l *Loop) Run(ctx context.Context) error {
	l.backend.Clear(types.SplashColor)
	l.backend.Present()

	for {
		select {
		case <-ctx.Done():
			log.Printf("game %s: loop cancelled after %d steps", l.state.UUID, l.state.Steps)
			return ctx.Err()
		default:
		}

		if l.Frame() {
			log.Printf("game %s: quit after %d steps", l.state.UUID, l.state.Steps)
			return nil
		}
	}
}

// Frame runs one frame and reports whether the player asked to quit.
func (l *Loop) Frame() bool {
	deadline := l.now().Add(types.FrameBudget)
	l.backend.Clear(types.BackgroundColor)

	for _, ev := range l.backend.PollEvents() {
		if l.handle(ev) {
			return true
		}
	}

	l.state.Draw(l.backend)
	l.backend.Present()
	l.sleep(frameDelay(deadline, l.now()))
	return false
}

func (l *Loop) handle(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		return true
	case EventKey:
		if !ev.HasKey {
			return false
		}
		if ev.Key == KeyEscape {
			return true
		}
		dir, ok := ev.Key.Direction()
		if !ok {
			return false
		}
		if !l.state.Snake().Turn(dir) {
			log.Printf("game %s: reversal to %v rejected", l.state.UUID, dir)
			return false
		}
		if l.state.Step() > 0 && l.sound != nil {
			l.sound.Chirp()
		}
	}
	return false
}

// frameDelay is the time left until deadline, never negative.
func frameDelay(deadline, now time.Time) time.Duration {
	d := deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
