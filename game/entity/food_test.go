package entity

import (
	"reflect"
	"testing"

	"turn-snake/game/types"

	"golang.org/x/exp/rand"
)

func TestRandomFoodWithinGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		f := RandomFood(rng, 1)
		if f.Pos.X < 0 || f.Pos.X >= types.GridSizeX || f.Pos.Y < 0 || f.Pos.Y >= types.GridSizeY {
			t.Fatalf("food placed off grid at %v", f.Pos)
		}
		if f.Power != 1 {
			t.Fatalf("power = %d, want 1", f.Power)
		}
	}
}

func TestRandomFoodDeterministicForSeed(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		if fa, fb := RandomFood(a, 2), RandomFood(b, 2); fa != fb {
			t.Fatalf("draw %d differs: %v vs %v", i, fa, fb)
		}
	}
}

func TestConsumeGrantsPower(t *testing.T) {
	s := NewSnake(pos(1, 1), types.Down)
	NewFood(pos(1, 2), 3).Consume(s)
	if s.PendingGrowth() != 3 {
		t.Errorf("pending growth = %d, want 3", s.PendingGrowth())
	}
}

func TestFoodDraw(t *testing.T) {
	r := &recorder{}
	NewFood(pos(3, 4), 1).Draw(r)

	want := []string{"color 0,0,150", "rect 92,122 26x26"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("draw calls = %v, want %v", r.calls, want)
	}
}
