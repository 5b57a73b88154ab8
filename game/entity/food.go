package entity

import (
	"turn-snake/game/types"

	"golang.org/x/exp/rand"
)

type Food struct {
	Pos   types.GridPosition
	Power int
}

func NewFood(pos types.GridPosition, power int) Food {
	return Food{Pos: pos, Power: power}
}

// RandomFood places food on a uniformly drawn cell of the grid. Overlap with
// other food or with the snake is allowed.
func RandomFood(rng *rand.Rand, power int) Food {
	return Food{
		Pos: types.GridPosition{
			X: rng.Intn(types.GridSizeX),
			Y: rng.Intn(types.GridSizeY),
		},
		Power: power,
	}
}

// Consume hands the food's power to the snake as pending growth.
func (f Food) Consume(s *Snake) {
	s.Grow(f.Power)
}

func (f Food) Draw(surface types.Surface) {
	surface.SetColor(types.FoodColor)
	surface.FillRect(
		f.Pos.X*types.TileSize+2,
		f.Pos.Y*types.TileSize+2,
		types.TileSize-4,
		types.TileSize-4,
	)
}
