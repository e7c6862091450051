package game

import (
	"errors"
	"log"
	"time"

	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"

	"github.com/google/uuid"
)

// Game owns the whole state of a play session. It is driven one frame at a
// time by Frame and is not safe for concurrent use.
type Game struct {
	UUID      string // current round
	StartTime time.Time

	settings       Settings
	snake          *entity.Snake
	pellet         types.Cell
	direction      types.Direction
	updatesPerMove float64
	updateCounter  int

	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager

	now func() time.Time
}

func NewGame(settings Settings, rng types.Random) *Game {
	collisionMgr := manager.NewCollisionManager()
	g := &Game{
		settings:     settings,
		collisionMgr: collisionMgr,
		foodManager:  manager.NewFoodManager(rng, collisionMgr),
		stateManager: manager.NewStateManager(),
		now:          time.Now,
	}
	g.ResetGame()
	return g
}

// ResetGame discards the current snake and starts a fresh round
func (g *Game) ResetGame() {
	if g.snake != nil {
		g.snake.Release()
	}

	g.snake = entity.NewSnake(types.Cell{Row: types.Rows / 2, Col: types.Cols / 2})
	g.direction = types.Down
	g.updatesPerMove = g.settings.InitialUpdatesPerMove
	g.updateCounter = g.settings.InitialCounter
	g.UUID = uuid.NewString()
	g.StartTime = g.now()

	pellet, err := g.foodManager.PlacePellet(g.snake)
	if err != nil {
		log.Panicf("placing first pellet of round %s: %v", g.UUID, err)
	}
	g.pellet = pellet
}

// endGame records the finished round and resets
func (g *Game) endGame(cause types.LossCause) {
	round := manager.RoundRecord{
		ID:        g.UUID,
		StartTime: g.StartTime,
		EndTime:   g.now(),
		Length:    g.snake.Len(),
		Cause:     cause,
	}
	g.stateManager.AddRound(round)
	log.Printf("round %s over after %s: %s, length %d", round.ID, round.Duration().Round(time.Millisecond), cause, round.Length)

	g.ResetGame()
}

// Frame runs one tick: input, bounds check, then the movement update
func (g *Game) Frame(in types.Input) {
	g.ApplyInput(in)
	g.CheckBounds()
	g.UpdateSnake()
}

// ApplyInput takes the first held key in the order left, right, up, down.
// Reversing onto the body is not prevented.
func (g *Game) ApplyInput(in types.Input) {
	switch {
	case in.IsKeyDown(types.KeyLeft):
		g.direction = types.Left
	case in.IsKeyDown(types.KeyRight):
		g.direction = types.Right
	case in.IsKeyDown(types.KeyUp):
		g.direction = types.Up
	case in.IsKeyDown(types.KeyDown):
		g.direction = types.Down
	}
}

// CheckBounds resets the game when the head has left the board
func (g *Game) CheckBounds() {
	if g.collisionMgr.IsOutOfBounds(g.snake.GetHead()) {
		g.endGame(types.OutOfBounds)
	}
}

// UpdateSnake advances the movement timer and, once it reaches the
// threshold, eats, collides or shifts.
func (g *Game) UpdateSnake() {
	g.updateCounter++
	if float64(g.updateCounter) < g.updatesPerMove {
		return
	}
	g.updateCounter = 0

	next := g.snake.GetHead().Add(g.direction)

	if g.collisionMgr.IsFoodCollision(next, g.pellet) {
		g.snake.Grow(g.pellet)
		pellet, err := g.foodManager.PlacePellet(g.snake)
		if errors.Is(err, manager.ErrBoardFull) {
			g.endGame(types.BoardFull)
			return
		}
		g.pellet = pellet
		g.increaseSpeed()
		return
	}

	// Leaving the board is caught by CheckBounds on the next frame.
	if g.collisionMgr.CheckCollision(next, g.snake) == types.SelfCollision {
		g.endGame(types.SelfCollision)
	}

	// Runs after a collision reset too, so the fresh snake moves once.
	g.snake.Shift(g.direction)
}

func (g *Game) increaseSpeed() {
	g.updatesPerMove -= g.settings.Decrement
	if g.updatesPerMove < g.settings.MinUpdatesPerMove {
		g.updatesPerMove = g.settings.MinUpdatesPerMove
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetPellet() types.Cell {
	return g.pellet
}

func (g *Game) GetDirection() types.Direction {
	return g.direction
}

func (g *Game) GetUpdatesPerMove() float64 {
	return g.updatesPerMove
}

// GetScore is the number of pellets eaten this round
func (g *Game) GetScore() int {
	return g.snake.Len() - 1
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateManager
}

// ElapsedTime returns the duration of the current round in seconds
func (g *Game) ElapsedTime() float64 {
	return g.now().Sub(g.StartTime).Seconds()
}
