package manager

import (
	"turn-snake/game/entity"
	"turn-snake/game/types"
)

// CollisionManager answers which items occupy a cell. Walls and the snake's
// own body never collide in this game.
type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.GridPosition, food entity.Food) bool {
	return pos == food.Pos
}

// CheckFoodCollisions returns the indices of every food item on pos.
// Several items may share a cell.
func (cm *CollisionManager) CheckFoodCollisions(pos types.GridPosition, foodList []entity.Food) []int {
	var hits []int
	for i, food := range foodList {
		if cm.IsFoodCollision(pos, food) {
			hits = append(hits, i)
		}
	}
	return hits
}
