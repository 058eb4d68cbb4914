package manager

import (
	"rainbow-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned by PlaceFood when every cell is taken by the snake.
var ErrBoardFull = errors.New("no free cell left for food")

// FoodManager owns the occupancy grid and the food cell. A cell is occupied
// iff the snake covers it; callers flip it once per body cell added or removed.
type FoodManager struct {
	grid     types.Grid
	occupied [][]bool
	free     int
	food     types.Point
	rng      *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	fm.occupied = make([][]bool, grid.Height)
	for y := range fm.occupied {
		fm.occupied[y] = make([]bool, grid.Width)
	}
	fm.free = grid.Cells()
	return fm
}

// Reset marks every cell free
func (fm *FoodManager) Reset() {
	for y := range fm.occupied {
		for x := range fm.occupied[y] {
			fm.occupied[y][x] = false
		}
	}
	fm.free = fm.grid.Cells()
}

// Occupied reports whether the snake covers p. Cells off the grid are never occupied.
func (fm *FoodManager) Occupied(p types.Point) bool {
	if !fm.grid.Contains(p) {
		return false
	}
	return fm.occupied[p.Y][p.X]
}

func (fm *FoodManager) SetOccupied(p types.Point, on bool) {
	if !fm.grid.Contains(p) || fm.occupied[p.Y][p.X] == on {
		return
	}
	fm.occupied[p.Y][p.X] = on
	if on {
		fm.free--
	} else {
		fm.free++
	}
}

func (fm *FoodManager) FreeCount() int {
	return fm.free
}

// PlaceFood picks a free cell uniformly at random: it draws r in [0, free)
// and returns the r-th free cell in row-major order.
func (fm *FoodManager) PlaceFood() (types.Point, error) {
	if fm.free == 0 {
		return types.Point{}, ErrBoardFull
	}

	target := fm.rng.Intn(fm.free)
	idx := 0
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			if fm.occupied[y][x] {
				continue
			}
			if idx == target {
				fm.food = types.Point{X: x, Y: y}
				return fm.food, nil
			}
			idx++
		}
	}
	// free is kept in lockstep with the grid, so the scan always finds target
	return types.Point{}, ErrBoardFull
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood forces the food cell, it must be free
func (fm *FoodManager) SetFood(p types.Point) {
	fm.food = p
}

// RandomStart returns a start cell at least two cells away from every wall.
func (fm *FoodManager) RandomStart() types.Point {
	pick := func(n int) int {
		if n <= 4 {
			return n / 2
		}
		return fm.rng.Intn(n-4) + 2
	}
	return types.Point{X: pick(fm.grid.Width), Y: pick(fm.grid.Height)}
}
