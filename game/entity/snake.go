package entity

import (
	"turn-snake/game/types"
)

// Snake keeps its body tail-first: body[0] is the tail and the last element is the head.
type Snake struct {
	body          []types.GridPosition
	facing        types.Direction
	pendingGrowth int
}

func NewSnake(startPos types.GridPosition, facing types.Direction) *Snake {
	return &Snake{
		body:   []types.GridPosition{startPos},
		facing: facing,
	}
}

// NewSnakeFromBody builds a snake from a head-first list of cells.
func NewSnakeFromBody(body []types.GridPosition, facing types.Direction) *Snake {
	if len(body) == 0 {
		panic("entity: snake body must not be empty")
	}
	s := &Snake{
		body:   make([]types.GridPosition, len(body)),
		facing: facing,
	}
	for i, p := range body {
		s.body[len(body)-1-i] = p
	}
	return s
}

// Turn points the snake in dir. A snake longer than one segment may not
// reverse onto itself; the turn is rejected and false returned.
func (s *Snake) Turn(dir types.Direction) bool {
	if types.Opposite(s.facing, dir) && len(s.body) > 1 {
		return false
	}
	s.facing = dir
	return true
}

// Advance moves the snake n cells along its facing, growing while growth is pending.
func (s *Snake) Advance(n int) {
	for i := 0; i < n; i++ {
		s.move(s.Head().Add(s.facing.Offset()))
		if s.pendingGrowth == 0 {
			s.removeTail()
		} else {
			s.pendingGrowth--
		}
	}
}

func (s *Snake) Step() {
	s.Advance(1)
}

func (s *Snake) Grow(amount int) {
	s.pendingGrowth += amount
}

func (s *Snake) move(newHead types.GridPosition) {
	s.body = append(s.body, newHead)
}

func (s *Snake) removeTail() {
	if len(s.body) > 0 {
		s.body = s.body[1:]
	}
}

func (s *Snake) Head() types.GridPosition {
	if len(s.body) == 0 {
		panic("entity: snake has no body")
	}
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a head-first copy of the snake's cells.
func (s *Snake) Body() []types.GridPosition {
	out := make([]types.GridPosition, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}

func (s *Snake) Facing() types.Direction {
	return s.facing
}

func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Draw renders the body as a polyline through the tile centres.
func (s *Snake) Draw(surface types.Surface) {
	surface.SetColor(types.SnakeColor)
	for i := len(s.body) - 1; i > 0; i-- {
		x1, y1 := s.body[i].Center()
		x2, y2 := s.body[i-1].Center()
		surface.DrawLine(x1, y1, x2, y2)
	}
}
