package manager

import (
	"os"
	"path/filepath"
	"testing"

	"rainbow-snake/game/entity"
	"rainbow-snake/game/scores"
	"rainbow-snake/game/types"

	"github.com/pkg/errors"
)

func fillAllBut(fm *FoodManager, grid types.Grid, keep types.Point) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if p != keep {
				fm.SetOccupied(p, true)
			}
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	grid := types.DefaultGrid
	fm := NewFoodManager(grid, 7)
	free := types.Point{X: 12, Y: 29}
	fillAllBut(fm, grid, free)

	if fm.FreeCount() != 1 {
		t.Fatalf("FreeCount = %d, want 1", fm.FreeCount())
	}
	for i := 0; i < 50; i++ {
		p, err := fm.PlaceFood()
		if err != nil {
			t.Fatalf("PlaceFood: %v", err)
		}
		if p != free {
			t.Fatalf("PlaceFood = %v, want %v", p, free)
		}
	}

	fm.SetOccupied(free, true)
	if _, err := fm.PlaceFood(); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("full board: err = %v, want ErrBoardFull", err)
	}
}

func TestPlaceFoodNeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 4}
	fm := NewFoodManager(grid, 1)
	for x := 0; x < 6; x++ {
		fm.SetOccupied(types.Point{X: x, Y: 1}, true)
	}
	seen := map[types.Point]bool{}
	for i := 0; i < 500; i++ {
		p, err := fm.PlaceFood()
		if err != nil {
			t.Fatalf("PlaceFood: %v", err)
		}
		if fm.Occupied(p) {
			t.Fatalf("food on snake at %v", p)
		}
		if fm.GetFood() != p {
			t.Fatalf("GetFood = %v, want %v", fm.GetFood(), p)
		}
		seen[p] = true
	}
	// every free cell should come up over enough draws
	if len(seen) != 18 {
		t.Errorf("saw %d distinct cells, want 18", len(seen))
	}
}

func TestSetOccupiedKeepsCount(t *testing.T) {
	fm := NewFoodManager(types.Grid{Width: 3, Height: 3}, 1)
	p := types.Point{X: 1, Y: 1}
	fm.SetOccupied(p, true)
	fm.SetOccupied(p, true)
	if fm.FreeCount() != 8 {
		t.Errorf("FreeCount = %d, want 8", fm.FreeCount())
	}
	fm.SetOccupied(types.Point{X: -1, Y: 0}, true)
	if fm.FreeCount() != 8 || fm.Occupied(types.Point{X: -1, Y: 0}) {
		t.Errorf("off-grid cell changed the board")
	}
	fm.Reset()
	if fm.FreeCount() != 9 || fm.Occupied(p) {
		t.Errorf("Reset left the board dirty")
	}
}

func TestRandomStartAwayFromWalls(t *testing.T) {
	fm := NewFoodManager(types.DefaultGrid, 3)
	for i := 0; i < 200; i++ {
		p := fm.RandomStart()
		if p.X < 2 || p.X > types.Cols-3 || p.Y < 2 || p.Y > types.Rows-3 {
			t.Fatalf("RandomStart = %v too close to a wall", p)
		}
	}
}

func TestCheckCollision(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	fm := NewFoodManager(grid, 1)
	cm := NewCollisionManager(grid, fm)

	// body head-first: (5,5) (4,5) (4,6) (5,6)
	snake := entity.NewSnake(types.Point{X: 5, Y: 6})
	fm.SetOccupied(types.Point{X: 5, Y: 6}, true)
	for _, p := range []types.Point{{X: 4, Y: 6}, {X: 4, Y: 5}, {X: 5, Y: 5}} {
		snake.PushHead(p)
		fm.SetOccupied(p, true)
	}

	tests := []struct {
		name    string
		pos     types.Point
		pending bool
		want    types.CollisionType
	}{
		{"free cell", types.Point{X: 6, Y: 5}, false, types.NoCollision},
		{"left wall", types.Point{X: -1, Y: 5}, false, types.WallCollision},
		{"bottom wall", types.Point{X: 5, Y: 10}, false, types.WallCollision},
		{"body", types.Point{X: 4, Y: 6}, false, types.SelfCollision},
		{"tail leaving", types.Point{X: 5, Y: 6}, false, types.NoCollision},
		{"tail staying", types.Point{X: 5, Y: 6}, true, types.SelfCollision},
	}
	for _, tt := range tests {
		if got := cm.CheckCollision(tt.pos, snake, tt.pending); got != tt.want {
			t.Errorf("%s: CheckCollision(%v) = %v, want %v", tt.name, tt.pos, got, tt.want)
		}
	}
}

func TestStateManagerRoundTrip(t *testing.T) {
	sm := NewStateManager(filepath.Join(t.TempDir(), "data", "scores.bin"))

	rec := scores.Record{Name: "ann", Score: 40}
	rec.Table.Update("ann", 40)
	rec.Table.Update("ben", 90)
	if err := sm.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := sm.Load()
	if got.Name != "ann" || got.Score != 40 {
		t.Errorf("Load = %q/%d", got.Name, got.Score)
	}
	e := got.Table.Entries()
	if len(e) != 2 || e[0].Name != "ben" || e[1].Score != 40 {
		t.Errorf("table = %+v", e)
	}
}

func TestStateManagerLoadFallbacks(t *testing.T) {
	dir := t.TempDir()

	missing := NewStateManager(filepath.Join(dir, "nope.bin")).Load()
	if missing.Name != "" || missing.Score != 0 || missing.Table.Len() != 0 {
		t.Errorf("missing file gave %+v", missing)
	}

	short := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(short, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	got := NewStateManager(short).Load()
	if got.Name != "" || got.Score != 0 || got.Table.Len() != 0 {
		t.Errorf("short file gave %+v", got)
	}
}

func TestStateManagerSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	// the parent "directory" is a regular file
	sm := NewStateManager(filepath.Join(blocker, "scores.bin"))
	if err := sm.Save(scores.Record{}); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Save err = %v, want ErrStorageUnavailable", err)
	}
}
