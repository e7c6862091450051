package manager

import (
	"errors"
	"testing"
	"time"

	"snek/game/entity"
	"snek/game/types"
)

// scriptedRandom replays values in order and then falls back to min
type scriptedRandom struct {
	values []int
}

func (s *scriptedRandom) Between(min, max int) int {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func TestCollisionManager(t *testing.T) {
	cm := NewCollisionManager()
	snake := entity.NewSnake(types.Cell{Row: 5, Col: 5})
	snake.Grow(types.Cell{Row: 5, Col: 6})

	tests := []struct {
		name string
		pos  types.Cell
		want types.LossCause
	}{
		{"free", types.Cell{Row: 4, Col: 4}, types.NoLoss},
		{"body", types.Cell{Row: 5, Col: 5}, types.SelfCollision},
		{"left wall", types.Cell{Row: 5, Col: -1}, types.OutOfBounds},
		{"bottom wall", types.Cell{Row: types.Rows, Col: 0}, types.OutOfBounds},
		{"last cell", types.Cell{Row: types.Rows - 1, Col: types.Cols - 1}, types.NoLoss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlacePelletSkipsSnake(t *testing.T) {
	snake := entity.NewSnake(types.Cell{Row: 0, Col: 0})
	snake.Grow(types.Cell{Row: 0, Col: 1})
	// (col 0,row 0) and (col 1,row 0) are taken, (col 2,row 3) is free
	rng := &scriptedRandom{values: []int{0, 0, 1, 0, 2, 3}}
	fm := NewFoodManager(rng, NewCollisionManager())

	pellet, err := fm.PlacePellet(snake)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pellet != (types.Cell{Row: 3, Col: 2}) {
		t.Errorf("Expected pellet (3,2), got %v", pellet)
	}
}

func TestPlacePelletNeverOnSnake(t *testing.T) {
	snake := entity.NewSnake(types.Cell{Row: 7, Col: 7})
	for col := 8; col < types.Cols; col++ {
		snake.Grow(types.Cell{Row: 7, Col: col})
	}
	fm := NewFoodManager(NewRandom(42), NewCollisionManager())

	for i := 0; i < 500; i++ {
		pellet, err := fm.PlacePellet(snake)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !pellet.InBounds() {
			t.Fatalf("Pellet %v outside the board", pellet)
		}
		for _, part := range snake.Body() {
			if part == pellet {
				t.Fatalf("Pellet %v placed on the snake", pellet)
			}
		}
	}
}

func TestPlacePelletBoardFull(t *testing.T) {
	snake := entity.NewSnake(types.Cell{Row: 0, Col: 0})
	for i := 1; i < types.Rows*types.Cols; i++ {
		snake.Grow(types.Cell{Row: i / types.Cols, Col: i % types.Cols})
	}
	fm := NewFoodManager(NewRandom(1), NewCollisionManager())

	if _, err := fm.PlacePellet(snake); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Expected ErrBoardFull, got %v", err)
	}
}

func TestRandomBetweenInclusive(t *testing.T) {
	rng := NewRandom(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.Between(0, 3)
		if v < 0 || v > 3 {
			t.Fatalf("Value %d outside [0,3]", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected all 4 values, saw %d", len(seen))
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	if sm.GetAverageScore() != 0 {
		t.Errorf("Expected empty average 0, got %f", sm.GetAverageScore())
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.AddRound(RoundRecord{ID: "a", StartTime: start, EndTime: start.Add(10 * time.Second), Length: 4, Cause: types.SelfCollision})
	sm.AddRound(RoundRecord{ID: "b", StartTime: start, EndTime: start.Add(20 * time.Second), Length: 2, Cause: types.OutOfBounds})

	if sm.GetHighScore() != 3 {
		t.Errorf("Expected high score 3, got %d", sm.GetHighScore())
	}
	if sm.GetGamesPlayed() != 2 {
		t.Errorf("Expected 2 games, got %d", sm.GetGamesPlayed())
	}
	if sm.GetAverageScore() != 2 {
		t.Errorf("Expected average 2, got %f", sm.GetAverageScore())
	}
	if sm.GetAverageDuration() != 15*time.Second {
		t.Errorf("Expected average duration 15s, got %v", sm.GetAverageDuration())
	}
}

func TestStateManagerHistoryBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxHistory+10; i++ {
		sm.AddRound(RoundRecord{Length: 1})
	}
	if got := len(sm.GetScoreHistory()); got != maxHistory {
		t.Errorf("Expected %d records, got %d", maxHistory, got)
	}
	if sm.GetGamesPlayed() != maxHistory+10 {
		t.Errorf("Expected %d games, got %d", maxHistory+10, sm.GetGamesPlayed())
	}
}
