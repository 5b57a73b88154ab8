package game

import (
	"log"

	"turn-snake/game/entity"
	"turn-snake/game/manager"
	"turn-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// GameState owns the player's snake and the food on the board. It has no
// win or lose condition; it keeps running until the loop driving it stops.
type GameState struct {
	UUID  string
	Steps int

	player      *entity.Snake
	foodManager *manager.FoodManager
}

// NewGame seeds a single-cell snake in the middle of the grid and scatters
// the initial food.
func NewGame(rng *rand.Rand) *GameState {
	g := NewGameWith(
		entity.NewSnake(types.GridPosition{X: types.StartX, Y: types.StartY}, types.StartFacing),
		nil,
		rng,
	)
	g.foodManager.Spawn(types.InitialFood, 1)
	return g
}

// NewGameWith builds a state from an explicit snake and food layout.
func NewGameWith(player *entity.Snake, food []entity.Food, rng *rand.Rand) *GameState {
	fm := manager.NewFoodManager(rng, manager.NewCollisionManager())
	for _, f := range food {
		fm.AddFood(f)
	}
	return &GameState{
		UUID:        uuid.New().String(),
		player:      player,
		foodManager: fm,
	}
}

func (g *GameState) Snake() *entity.Snake {
	return g.player
}

func (g *GameState) Food() []entity.Food {
	return g.foodManager.GetFoodList()
}

// Step advances the world one tick and returns how many food items were eaten.
func (g *GameState) Step() int {
	g.Steps++
	g.player.Step()

	eaten := g.foodManager.Resolve(g.player)
	for _, f := range eaten {
		log.Printf("game %s: step %d ate food at (%d,%d) power %d, length %d pending %d",
			g.UUID, g.Steps, f.Pos.X, f.Pos.Y, f.Power, g.player.Len(), g.player.PendingGrowth())
	}
	return len(eaten)
}

func (g *GameState) Draw(surface types.Surface) {
	g.player.Draw(surface)
	for _, food := range g.foodManager.GetFoodList() {
		food.Draw(surface)
	}
}
