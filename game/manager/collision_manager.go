package manager

import (
	"snek/game/entity"
	"snek/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// CheckCollision classifies the move of snake onto pos
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake) types.LossCause {
	if cm.IsOutOfBounds(pos) {
		return types.OutOfBounds
	}
	if cm.IsSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoLoss
}

// IsOutOfBounds checks if a position lies outside the board
func (cm *CollisionManager) IsOutOfBounds(pos types.Cell) bool {
	return !pos.InBounds()
}

// IsSelfCollision checks pos against every segment, tail included
func (cm *CollisionManager) IsSelfCollision(pos types.Cell, snake *entity.Snake) bool {
	return snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with the pellet
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, pellet types.Cell) bool {
	return pos == pellet
}
