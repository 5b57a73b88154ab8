package manager

import (
	"turn-snake/game/entity"
	"turn-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	rng          *rand.Rand
	foodList     []entity.Food
	collisionMgr *CollisionManager
}

func NewFoodManager(rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		rng:          rng,
		foodList:     make([]entity.Food, 0),
		collisionMgr: collisionMgr,
	}
}

// Spawn adds count items of the given power at random cells.
func (fm *FoodManager) Spawn(count, power int) {
	for i := 0; i < count; i++ {
		fm.foodList = append(fm.foodList, fm.GenerateFood(power))
	}
}

func (fm *FoodManager) GenerateFood(power int) entity.Food {
	return entity.RandomFood(fm.rng, power)
}

func (fm *FoodManager) AddFood(food entity.Food) {
	fm.foodList = append(fm.foodList, food)
}

func (fm *FoodManager) GetFoodList() []entity.Food {
	out := make([]entity.Food, len(fm.foodList))
	copy(out, fm.foodList)
	return out
}

// Resolve feeds the snake every item under its head, then replaces each eaten
// item in place with fresh food of types.ReplacementFood power. The eaten items
// are returned.
func (fm *FoodManager) Resolve(snake *entity.Snake) []entity.Food {
	hits := fm.collisionMgr.CheckFoodCollisions(snake.Head(), fm.foodList)
	if len(hits) == 0 {
		return nil
	}

	eaten := make([]entity.Food, 0, len(hits))
	for _, i := range hits {
		fm.foodList[i].Consume(snake)
		eaten = append(eaten, fm.foodList[i])
	}
	for _, i := range hits {
		fm.foodList[i] = fm.GenerateFood(types.ReplacementFood)
	}
	return eaten
}
