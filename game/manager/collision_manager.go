package manager

import (
	"rainbow-snake/game/entity"
	"rainbow-snake/game/types"
)

type CollisionManager struct {
	grid  types.Grid
	board *FoodManager
}

func NewCollisionManager(grid types.Grid, board *FoodManager) *CollisionManager {
	return &CollisionManager{
		grid:  grid,
		board: board,
	}
}

// CheckCollision tells whether moving the head onto pos kills the snake.
// The tail cell is free to enter when the tail leaves on this same move,
// which is the case unless a queued growth keeps it in place.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, growthPending bool) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}

	if !cm.board.Occupied(pos) {
		return types.NoCollision
	}
	if pos == snake.GetTail() && !growthPending && snake.Len() > 1 {
		return types.NoCollision
	}
	return types.SelfCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}
