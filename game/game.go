package game

import (
	"log"
	"time"

	"rainbow-snake/game/entity"
	"rainbow-snake/game/manager"
	"rainbow-snake/game/scores"
	"rainbow-snake/game/types"
	"rainbow-snake/stats"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MoveOutcome is the result of advancing the snake by one cell
type MoveOutcome int

const (
	Continue MoveOutcome = iota
	AteFood
	Died
)

// ScoreStore persists the score record between games.
type ScoreStore interface {
	Load() scores.Record
	Save(rec scores.Record) error
}

// HistoryRecorder receives every finished game.
type HistoryRecorder interface {
	AddGame(rec stats.GameRecord) error
}

// Config holds what a Game needs besides its collaborators.
type Config struct {
	Grid types.Grid
	Seed uint64
	// Start is the first body cell of every game. Nil picks a random cell
	// away from the walls.
	Start *types.Point
}

func DefaultConfig() Config {
	return Config{
		Grid: types.DefaultGrid,
		Seed: uint64(time.Now().UnixNano()),
	}
}

// Game is the controller: it owns the snake, the board and the score table
// and is driven by Advance on each tick and HandleEvent on each input. It
// is not safe for concurrent use; ticks and inputs must be delivered from
// one goroutine.
type Game struct {
	UUID string
	Grid types.Grid

	snake      *entity.Snake
	growth     entity.GrowthQueue
	board      *manager.FoodManager
	collisions *manager.CollisionManager
	store      ScoreStore
	history    HistoryRecorder
	top        scores.Table
	start      *types.Point

	direction    types.Direction
	score        int
	foodsEaten   int
	tickInterval time.Duration
	mode         Mode
	playerName   []byte
	saved        bool
	cursorOn     bool
	cause        types.CollisionType

	StartTime time.Time
	EndTime   time.Time
}

func NewGame(cfg Config, store ScoreStore, history HistoryRecorder) *Game {
	board := manager.NewFoodManager(cfg.Grid, cfg.Seed)
	g := &Game{
		UUID:       uuid.New().String(),
		Grid:       cfg.Grid,
		board:      board,
		collisions: manager.NewCollisionManager(cfg.Grid, board),
		store:      store,
		history:    history,
		start:      cfg.Start,
		mode:       NamePrompt,
		cursorOn:   true,
	}

	rec := store.Load()
	g.top = rec.Table
	g.reset()
	return g
}

// reset puts a fresh single-cell snake on an empty board.
func (g *Game) reset() {
	var startPos types.Point
	if g.start != nil {
		startPos = *g.start
	} else {
		startPos = g.board.RandomStart()
	}

	g.board.Reset()
	g.growth.Clear()
	if g.snake == nil {
		g.snake = entity.NewSnake(startPos)
	} else {
		g.snake.Reset(startPos)
	}
	g.board.SetOccupied(startPos, true)

	g.direction = types.RIGHT
	g.score = 0
	g.foodsEaten = 0
	g.tickInterval = types.BaseDelay
	g.cause = types.NoCollision
	g.StartTime = time.Now()
	g.EndTime = time.Time{}

	if _, err := g.board.PlaceFood(); err != nil {
		g.endGame(types.BoardFull)
	}
}

// Advance runs one tick. Only a Playing game moves.
func (g *Game) Advance() {
	g.cursorOn = !g.cursorOn
	if g.mode != Playing {
		return
	}
	if g.move() == Died {
		g.endGame(g.cause)
	}
}

func (g *Game) endGame(cause types.CollisionType) {
	g.cause = cause
	g.mode = GameOver
	g.EndTime = time.Now()
	log.Printf("game: over (%s) with score %d after %d foods", cause, g.score, g.foodsEaten)
}

// move pushes the head one cell along the current direction.
//
// Growth is deferred: a move that eats gives up its tail like any other
// move but queues the tail cell; the next move that finds a queued cell
// keeps its tail instead, so the body gets one cell longer then.
func (g *Game) move() MoveOutcome {
	next := g.snake.GetHead().Add(g.direction.ToPoint())

	if c := g.collisions.CheckCollision(next, g.snake, g.growth.Len() > 0); c != types.NoCollision {
		g.cause = c
		return Died
	}

	tail := g.snake.GetTail()
	g.board.SetOccupied(tail, false)
	g.snake.PushHead(next)
	g.board.SetOccupied(next, true)

	if next == g.board.GetFood() {
		g.snake.RemoveTail()
		g.growth.Enqueue(tail)
		g.score += types.ScorePerFood
		g.foodsEaten++
		g.tickInterval = types.TickDelay(g.foodsEaten)
		if _, err := g.board.PlaceFood(); err != nil {
			if errors.Is(err, manager.ErrBoardFull) {
				g.cause = types.BoardFull
			}
			return Died
		}
		return AteFood
	}

	if _, ok := g.growth.Dequeue(); ok {
		// keep the tail this time
		g.board.SetOccupied(tail, true)
		return Continue
	}
	g.snake.RemoveTail()
	return Continue
}

// HandleEvent applies one input. It reports true when the player asked to quit.
func (g *Game) HandleEvent(ev Event) (quit bool) {
	if ev.Kind == Quit {
		return true
	}

	switch g.mode {
	case NamePrompt:
		g.handleNameInput(ev)
	case Playing:
		if dir, ok := ev.direction(); ok {
			g.SetDirection(dir)
		} else if ev.Kind == TogglePause {
			g.mode = Paused
		}
	case Paused:
		if ev.Kind == TogglePause {
			g.mode = Playing
		}
	case GameOver:
		if ev.Kind == Restart {
			g.restart()
		}
	}
	return false
}

func (g *Game) handleNameInput(ev Event) {
	switch ev.Kind {
	case Confirm:
		g.mode = Playing
		g.StartTime = time.Now()
		log.Printf("game: %q starts playing", g.PlayerName())
	case Backspace:
		if len(g.playerName) > 0 {
			g.playerName = g.playerName[:len(g.playerName)-1]
		}
	case TextChar:
		if len(g.playerName) < types.MaxNameLen && ev.Char >= 32 && ev.Char <= 126 {
			g.playerName = append(g.playerName, byte(ev.Char))
		}
	}
}

// SetDirection turns the snake unless dir would reverse it on the spot.
func (g *Game) SetDirection(dir types.Direction) {
	if dir == types.NONE || dir == g.direction.Opposite() {
		return
	}
	g.direction = dir
}

// restart stores the finished game and starts a new one.
func (g *Game) restart() {
	name := g.PlayerName()
	g.top.Update(name, int32(g.score))
	err := g.store.Save(scores.Record{Name: name, Score: int32(g.score), Table: g.top})
	g.saved = err == nil

	if g.history != nil {
		rec := stats.GameRecord{
			Session:    g.UUID,
			Player:     name,
			Score:      g.score,
			FoodsEaten: g.foodsEaten,
			Length:     g.snake.Len(),
			Cause:      g.cause.String(),
			StartTime:  g.StartTime,
			EndTime:    g.EndTime,
		}
		if err := g.history.AddGame(rec); err != nil {
			log.Printf("stats: %v", err)
		}
	}

	g.mode = Playing
	g.reset()

	// the file may have been changed by another run in the meantime
	rec := g.store.Load()
	g.top = rec.Table
	if rec.Name != "" {
		g.playerName = []byte(rec.Name)
	}
}

func (g *Game) Mode() Mode {
	return g.mode
}

// Snake returns the body cells, head first
func (g *Game) Snake() []types.Point {
	return g.snake.Body()
}

func (g *Game) Food() types.Point {
	return g.board.GetFood()
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) FoodsEaten() int {
	return g.foodsEaten
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

// Rank is the place the running score would take in the table
func (g *Game) Rank() int {
	return g.top.Rank(int32(g.score))
}

func (g *Game) TopScores() []scores.Entry {
	return g.top.Entries()
}

func (g *Game) PlayerName() string {
	return string(g.playerName)
}

// Saved reports whether the last restart managed to write the score file.
func (g *Game) Saved() bool {
	return g.saved
}

func (g *Game) CursorOn() bool {
	return g.cursorOn
}

// Cause tells why the last game ended
func (g *Game) Cause() types.CollisionType {
	return g.cause
}

func (g *Game) PendingGrowth() int {
	return g.growth.Len()
}

// TickInterval is the delay until the next Advance.
func (g *Game) TickInterval() time.Duration {
	if g.mode == NamePrompt {
		return types.CursorBlink
	}
	return g.tickInterval
}
