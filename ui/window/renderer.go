package window

import (
	"turn-snake/game/types"
	"turn-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Renderer is the raylib window backend.
type Renderer struct {
	color rl.Color
}

// NewRenderer opens the game window. Frame pacing is left to ui.Loop, so no
// target FPS is set here.
func NewRenderer() (*Renderer, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(types.WindowWidth, types.WindowHeight, types.WindowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	// Escape is handled by the loop like any other key
	rl.SetExitKey(0)

	return &Renderer{color: rl.Black}, nil
}

func (r *Renderer) SetColor(c types.Color) {
	r.color = rl.NewColor(c.R, c.G, c.B, 255)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 int) {
	rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), r.color)
}

func (r *Renderer) FillRect(x, y, w, h int) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), r.color)
}

func (r *Renderer) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, 255))
}

// Present ends the frame. raylib gathers input for the next frame here.
func (r *Renderer) Present() {
	rl.EndDrawing()
}

func (r *Renderer) PollEvents() []ui.Event {
	var events []ui.Event
	if rl.WindowShouldClose() {
		events = append(events, ui.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, ui.KeyEvent(raylibKey(key)))
	}
	return events
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func raylibKey(key int32) ui.Key {
	switch key {
	case rl.KeyUp:
		return ui.KeyUp
	case rl.KeyDown:
		return ui.KeyDown
	case rl.KeyLeft:
		return ui.KeyLeft
	case rl.KeyRight:
		return ui.KeyRight
	case rl.KeyEscape:
		return ui.KeyEscape
	}
	return ui.KeyOther
}
