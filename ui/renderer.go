package ui

import (
	"fmt"
	"math"

	"rainbow-snake/game"
	"rainbow-snake/game/types"
	"rainbow-snake/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	bigFont   = 18
	smallFont = 12
)

var (
	gridColor  = rl.Color{R: 26, G: 26, B: 26, A: 255}
	foodColor  = rl.Color{R: 255, G: 77, B: 77, A: 255}
	headColor  = rl.Yellow
	tailColor  = rl.Blue
	legendGray = rl.Color{R: 204, G: 204, B: 204, A: 255}
)

// Renderer draws the game. It only reads from the controller.
type Renderer struct {
	cellSize int32
	width    int32
	height   int32
	stats    *stats.GameStats
}

func NewRenderer(grid types.Grid, cellSize int, history *stats.GameStats) *Renderer {
	return &Renderer{
		cellSize: int32(cellSize),
		width:    int32(grid.Width * cellSize),
		height:   int32(grid.Height * cellSize),
		stats:    history,
	}
}

// WindowSize returns the pixel size the window needs
func (r *Renderer) WindowSize() (int32, int32) {
	return r.width, r.height
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	if g.Mode() == game.NamePrompt {
		r.drawNamePrompt(g)
		return
	}

	r.drawGrid(g.Grid)
	r.drawScore(g)

	if g.Mode() == game.GameOver {
		r.drawGameOver(g)
		return
	}
	if g.Mode() == game.Paused {
		r.drawPaused()
	}

	r.drawSnake(g.Snake())
	r.drawFood(g.Food())
}

func (r *Renderer) drawNamePrompt(g *game.Game) {
	rl.DrawText("Enter your name:", r.width/3, r.height/2-30, bigFont, rl.White)
	name := g.PlayerName()
	if g.CursorOn() {
		name += "_"
	}
	rl.DrawText(name, r.width/3, r.height/2, bigFont, rl.White)
}

func (r *Renderer) drawGrid(grid types.Grid) {
	for x := 0; x <= grid.Width; x++ {
		px := int32(x) * r.cellSize
		rl.DrawLine(px, 0, px, r.height, gridColor)
	}
	for y := 0; y <= grid.Height; y++ {
		py := int32(y) * r.cellSize
		rl.DrawLine(0, py, r.width, py, gridColor)
	}
}

func (r *Renderer) drawScore(g *game.Game) {
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), 10, 10, bigFont, rl.White)
	rl.DrawText(fmt.Sprintf("Rank: %d", g.Rank()), 10, 30, bigFont, rl.White)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	y := r.height/2 - 20
	rl.DrawText("GAME OVER!  Press 'r' to restart, 'q' to quit.", 30, y, bigFont, rl.Red)

	if g.Saved() {
		rl.DrawText("Scores saved!", 30, y+22, smallFont, rl.Green)
	}

	y += 42
	rl.DrawText("Top-5 Scores:", 30, y, smallFont, rl.Yellow)
	for _, e := range g.TopScores() {
		y += 20
		rl.DrawText(fmt.Sprintf("%s %d", e.Name, e.Score), 30, y, smallFont, rl.Yellow)
	}

	if r.stats != nil && r.stats.GetGamesPlayed() > 0 {
		summary := fmt.Sprintf("Games: %d  Best: %d  Avg: %.1f  Avg time: %.0fs",
			r.stats.GetGamesPlayed(), r.stats.GetMaxScore(),
			r.stats.GetAverageScore(), r.stats.GetAverageDuration())
		rl.DrawText(summary, 30, r.height-30, smallFont, legendGray)
	}
}

func (r *Renderer) drawPaused() {
	msg := "PAUSED - Press 'p' to resume"
	x := (r.width - rl.MeasureText(msg, bigFont)) / 2
	rl.DrawText(msg, x, r.height/2, bigFont, rl.Yellow)

	legend := "Arrow keys: move  |  q: quit  |  r: restart"
	x = (r.width - rl.MeasureText(legend, smallFont)) / 2
	rl.DrawText(legend, x, r.height/2+24, smallFont, legendGray)
}

// drawSnake paints the head yellow, the tail blue and the cells between
// with a hue that walks once around the colour wheel along the body.
func (r *Renderer) drawSnake(body []types.Point) {
	step := 1.0 / float64(max(len(body), 1))
	for i, p := range body {
		var c rl.Color
		switch {
		case i == 0:
			c = headColor
		case i == len(body)-1:
			c = tailColor
		default:
			c = rainbow(float64(i) * step)
		}
		rl.DrawRectangle(
			int32(p.X)*r.cellSize+1,
			int32(p.Y)*r.cellSize+1,
			r.cellSize-2, r.cellSize-2, c)
	}
}

func (r *Renderer) drawFood(p types.Point) {
	rl.DrawRectangle(
		int32(p.X)*r.cellSize+2,
		int32(p.Y)*r.cellSize+2,
		r.cellSize-4, r.cellSize-4, foodColor)
}

// rainbow maps hue in [0,1) to three phase-shifted sine waves
func rainbow(hue float64) rl.Color {
	channel := func(phase float64) uint8 {
		return uint8((math.Sin(hue*2*math.Pi+phase)*0.5 + 0.5) * 255)
	}
	return rl.Color{R: channel(0), G: channel(2.09), B: channel(4.18), A: 255}
}
