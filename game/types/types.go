package types

import "time"

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	Cols = 30
	Rows = 30

	ScorePerFood  = 10
	MaxTop        = 5
	SpeedInterval = 5 // Foods eaten before the snake gets faster

	BaseDelay   = 150 * time.Millisecond
	MinDelay    = 60 * time.Millisecond
	DelayStep   = 10 * time.Millisecond
	CursorBlink = 300 * time.Millisecond

	NameLength = 32 // Bytes reserved for a name on disk, NUL included
	MaxNameLen = NameLength - 1
)

// DefaultGrid is the board every game is played on
var DefaultGrid = Grid{Width: Cols, Height: Rows}

// TickDelay returns the tick interval after foodsEaten foods
func TickDelay(foodsEaten int) time.Duration {
	d := BaseDelay - time.Duration(foodsEaten/SpeedInterval)*DelayStep
	if d < MinDelay {
		return MinDelay
	}
	return d
}

// CollisionType represents the reason a game ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}
