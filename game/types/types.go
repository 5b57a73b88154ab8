package types

import "time"

// Grid and window geometry
const (
	GridSizeX = 20
	GridSizeY = 20
	TileSize  = 30

	WindowWidth  = GridSizeX * TileSize
	WindowHeight = GridSizeY * TileSize
	WindowTitle  = "Turn-Based Snake"
)

// FrameBudget is the nominal duration of one rendered frame (~60 Hz).
const FrameBudget = 16_666_667 * time.Nanosecond

// Starting layout
const (
	StartX          = 10
	StartY          = 10
	StartFacing     = Right
	InitialFood     = 3
	ReplacementFood = 1 // power of food spawned after one is eaten
)

// GridPosition is a cell on the grid. Coordinates are not bounded.
type GridPosition struct {
	X, Y int
}

func (p GridPosition) Add(o GridPosition) GridPosition {
	return GridPosition{X: p.X + o.X, Y: p.Y + o.Y}
}

// Center returns the pixel centre of the cell.
func (p GridPosition) Center() (int, int) {
	return p.X*TileSize + TileSize/2, p.Y*TileSize + TileSize/2
}

// Direction is the way the snake faces
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Offset converts a Direction into a one-cell displacement
func (d Direction) Offset() GridPosition {
	switch d {
	case Up:
		return GridPosition{X: 0, Y: -1}
	case Down:
		return GridPosition{X: 0, Y: 1}
	case Left:
		return GridPosition{X: -1, Y: 0}
	case Right:
		return GridPosition{X: 1, Y: 0}
	default:
		return GridPosition{}
	}
}

// Opposite reports whether b is the reverse heading of a.
func Opposite(a, b Direction) bool {
	switch a {
	case Up:
		return b == Down
	case Down:
		return b == Up
	case Left:
		return b == Right
	case Right:
		return b == Left
	}
	return false
}

type Color struct {
	R, G, B uint8
}

var (
	SnakeColor      = Color{R: 200, G: 0, B: 0}
	FoodColor       = Color{R: 0, G: 0, B: 150}
	BackgroundColor = Color{R: 100, G: 200, B: 0}
	SplashColor     = Color{R: 0, G: 255, B: 255}
)

// Surface is the set of drawing primitives the game needs, in pixels.
type Surface interface {
	SetColor(c Color)
	DrawLine(x1, y1, x2, y2 int)
	FillRect(x, y, w, h int)
}
