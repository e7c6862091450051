package manager

import (
	"errors"
	"time"

	"snek/game/entity"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no free cell is left for the pellet
var ErrBoardFull = errors.New("no free cell for pellet")

type FoodManager struct {
	rng          types.Random
	collisionMgr *CollisionManager
}

func NewFoodManager(rng types.Random, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// PlacePellet samples random cells until one is not on the snake
func (fm *FoodManager) PlacePellet(snake *entity.Snake) (types.Cell, error) {
	if snake.Len() >= types.Rows*types.Cols {
		return types.Cell{}, ErrBoardFull
	}
	for {
		pellet := types.Cell{
			Col: fm.rng.Between(0, types.Cols-1),
			Row: fm.rng.Between(0, types.Rows-1),
		}
		if !fm.collisionMgr.IsSelfCollision(pellet, snake) {
			return pellet, nil
		}
	}
}

type seededRandom struct {
	r *rand.Rand
}

// NewRandom returns a Random backed by a PCG source. A zero seed is
// replaced by the current time.
func NewRandom(seed uint64) types.Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &seededRandom{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRandom) Between(min, max int) int {
	return min + s.r.Intn(max-min+1)
}
