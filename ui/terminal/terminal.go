// Package terminal runs the game in a text terminal. Each grid tile is drawn
// as two columns by one row so tiles look roughly square.
package terminal

import (
	"math"

	"turn-snake/game/types"
	"turn-snake/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	colsPerTile = 2
	block       = '█'
	eventBuffer = 100
)

type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
	events chan tcell.Event
	done   chan struct{}
}

func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell: create screen")
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises screen and starts the event pump. PollEvent
// blocks, so it runs on its own goroutine and the loop drains the channel.
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "tcell: init screen")
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) SetColor(c types.Color) {
	t.style = tcell.StyleDefault.Foreground(rgb(c))
}

// DrawLine walks the tiles between the two pixel points.
func (t *Terminal) DrawLine(x1, y1, x2, y2 int) {
	gx1, gy1 := tile(x1), tile(y1)
	gx2, gy2 := tile(x2), tile(y2)
	dx, dy := gx2-gx1, gy2-gy1

	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		t.setTile(gx1, gy1)
		return
	}
	for i := 0; i <= steps; i++ {
		gx := gx1 + int(math.Round(float64(dx*i)/float64(steps)))
		gy := gy1 + int(math.Round(float64(dy*i)/float64(steps)))
		t.setTile(gx, gy)
	}
}

// FillRect fills every tile the pixel rectangle touches.
func (t *Terminal) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for gy := tile(y); gy <= tile(y+h-1); gy++ {
		for gx := tile(x); gx <= tile(x+w-1); gx++ {
			t.setTile(gx, gy)
		}
	}
}

func (t *Terminal) setTile(gx, gy int) {
	if gx < 0 || gy < 0 {
		return
	}
	for c := 0; c < colsPerTile; c++ {
		t.screen.SetContent(gx*colsPerTile+c, gy, block, nil, t.style)
	}
}

func (t *Terminal) Clear(c types.Color) {
	t.screen.SetStyle(tcell.StyleDefault.Background(rgb(c)))
	t.screen.Clear()
}

func (t *Terminal) Present() {
	t.screen.Show()
}

func (t *Terminal) PollEvents() []ui.Event {
	var events []ui.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := t.translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (ui.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return ui.QuitEvent(), true
		case tcell.KeyEscape:
			return ui.KeyEvent(ui.KeyEscape), true
		case tcell.KeyUp:
			return ui.KeyEvent(ui.KeyUp), true
		case tcell.KeyDown:
			return ui.KeyEvent(ui.KeyDown), true
		case tcell.KeyLeft:
			return ui.KeyEvent(ui.KeyLeft), true
		case tcell.KeyRight:
			return ui.KeyEvent(ui.KeyRight), true
		case tcell.KeyRune:
			return ui.KeyEvent(runeKey(ev.Rune())), true
		}
		return ui.Event{Kind: ui.EventKey}, true
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return ui.Event{}, false
}

// vi-style movement keys
func runeKey(r rune) ui.Key {
	switch r {
	case 'k':
		return ui.KeyUp
	case 'j':
		return ui.KeyDown
	case 'h':
		return ui.KeyLeft
	case 'l':
		return ui.KeyRight
	}
	return ui.KeyOther
}

func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

func rgb(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tile maps a pixel coordinate to its grid tile, rounding toward negative infinity.
func tile(px int) int {
	if px < 0 {
		return (px - types.TileSize + 1) / types.TileSize
	}
	return px / types.TileSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
