package manager

import (
	"reflect"
	"testing"

	"turn-snake/game/entity"
	"turn-snake/game/types"

	"golang.org/x/exp/rand"
)

func newFoodManager(seed uint64) *FoodManager {
	return NewFoodManager(rand.New(rand.NewSource(seed)), NewCollisionManager())
}

func TestCheckFoodCollisions(t *testing.T) {
	cm := NewCollisionManager()
	food := []entity.Food{
		entity.NewFood(types.GridPosition{X: 1, Y: 1}, 1),
		entity.NewFood(types.GridPosition{X: 2, Y: 2}, 1),
		entity.NewFood(types.GridPosition{X: 1, Y: 1}, 4),
	}

	if got := cm.CheckFoodCollisions(types.GridPosition{X: 1, Y: 1}, food); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("hits = %v, want [0 2]", got)
	}
	if got := cm.CheckFoodCollisions(types.GridPosition{X: 5, Y: 5}, food); len(got) != 0 {
		t.Errorf("hits = %v, want none", got)
	}
}

func TestSpawn(t *testing.T) {
	fm := newFoodManager(1)
	fm.Spawn(3, 1)

	list := fm.GetFoodList()
	if len(list) != 3 {
		t.Fatalf("spawned %d items, want 3", len(list))
	}
	for _, f := range list {
		if f.Power != 1 {
			t.Errorf("power = %d, want 1", f.Power)
		}
	}
}

func TestResolveNothingUnderHead(t *testing.T) {
	fm := newFoodManager(1)
	fm.AddFood(entity.NewFood(types.GridPosition{X: 3, Y: 3}, 1))
	snake := entity.NewSnake(types.GridPosition{X: 0, Y: 0}, types.Right)

	if eaten := fm.Resolve(snake); eaten != nil {
		t.Errorf("eaten = %v, want nil", eaten)
	}
	if snake.PendingGrowth() != 0 {
		t.Errorf("pending growth = %d, want 0", snake.PendingGrowth())
	}
}

func TestResolveStackedFood(t *testing.T) {
	fm := newFoodManager(9)
	cell := types.GridPosition{X: 4, Y: 4}
	fm.AddFood(entity.NewFood(cell, 2))
	fm.AddFood(entity.NewFood(types.GridPosition{X: 0, Y: 19}, 1))
	fm.AddFood(entity.NewFood(cell, 5))
	snake := entity.NewSnake(cell, types.Up)

	eaten := fm.Resolve(snake)
	if len(eaten) != 2 {
		t.Fatalf("ate %d items, want 2", len(eaten))
	}
	if snake.PendingGrowth() != 7 {
		t.Errorf("pending growth = %d, want 7", snake.PendingGrowth())
	}

	list := fm.GetFoodList()
	if len(list) != 3 {
		t.Fatalf("food count = %d, want 3", len(list))
	}
	if list[1] != entity.NewFood(types.GridPosition{X: 0, Y: 19}, 1) {
		t.Errorf("uneaten food changed to %v", list[1])
	}
	for _, i := range []int{0, 2} {
		if list[i].Power != types.ReplacementFood {
			t.Errorf("replacement %d has power %d, want %d", i, list[i].Power, types.ReplacementFood)
		}
	}
}

func TestGetFoodListIsCopy(t *testing.T) {
	fm := newFoodManager(1)
	fm.AddFood(entity.NewFood(types.GridPosition{X: 1, Y: 1}, 1))

	list := fm.GetFoodList()
	list[0].Power = 99

	if fm.GetFoodList()[0].Power != 1 {
		t.Error("GetFoodList exposed internal storage")
	}
}
