package ui

import (
	"fmt"
	"strconv"
	"strings"

	"snek/game"
	"snek/game/manager"
	"snek/game/types"
)

const (
	fadeStep  = 5  // alpha lost per segment
	fadeFloor = 64 // no fading once alpha is at or below this
	hudMargin = 4

	recentRounds = 5
)

// Layout sizes the board in backend units
type Layout struct {
	CellSize      int
	LineThickness int
	HUDHeight     int
	FontSize      int
}

// BoardSize returns the size of the grid area
func (l Layout) BoardSize() (width, height int) {
	width = types.Cols*l.CellSize + (types.Cols-1)*l.LineThickness
	height = types.Rows*l.CellSize + (types.Rows-1)*l.LineThickness
	return width, height
}

// WindowSize adds the HUD strip below the board
func (l Layout) WindowSize() (width, height int) {
	width, height = l.BoardSize()
	return width, height + l.HUDHeight
}

type Renderer struct {
	layout Layout
}

func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Draw paints grid, pellet, snake and HUD. It never mutates the game.
func (r *Renderer) Draw(c Canvas, g *game.Game) {
	r.drawGrid(c)
	r.drawCell(c, g.GetPellet(), types.PelletColor)
	r.drawSnake(c, g.GetSnake().Body())
	r.drawHUD(c, g)
}

func (r *Renderer) drawGrid(c Canvas) {
	if r.layout.LineThickness == 0 {
		return
	}
	width, height := r.layout.BoardSize()
	step := r.layout.CellSize + r.layout.LineThickness

	for row := 0; row < types.Rows-1; row++ {
		y := r.layout.CellSize + row*step
		c.DrawRectangle(0, y, width, r.layout.LineThickness, types.LineColor)
	}
	for col := 0; col < types.Cols-1; col++ {
		x := r.layout.CellSize + col*step
		c.DrawRectangle(x, 0, r.layout.LineThickness, height, types.LineColor)
	}
}

func (r *Renderer) drawCell(c Canvas, cell types.Cell, color types.Color) {
	step := r.layout.CellSize + r.layout.LineThickness
	c.DrawRectangle(cell.Col*step, cell.Row*step, r.layout.CellSize, r.layout.CellSize, color)
}

// drawSnake fades each segment after the head until the floor is reached
func (r *Renderer) drawSnake(c Canvas, body []types.Cell) {
	color := types.SnakeColor
	for _, part := range body {
		r.drawCell(c, part, color)
		if color.A > fadeFloor {
			color.A -= fadeStep
		}
	}
}

// drawHUD writes the score line and the session line. They share one
// line when the strip is only one font size tall.
func (r *Renderer) drawHUD(c Canvas, g *game.Game) {
	if r.layout.HUDHeight == 0 {
		return
	}
	stats := g.GetStateManager()
	_, boardHeight := r.layout.BoardSize()

	score := fmt.Sprintf("Score: %d  High: %d  Games: %d  Time: %.0fs",
		g.GetScore(), stats.GetHighScore(), stats.GetGamesPlayed(), g.ElapsedTime())
	session := fmt.Sprintf("Avg: %.0fs  Last: %s",
		stats.GetAverageDuration().Seconds(), recentScores(stats.GetScoreHistory()))

	x := 0
	if r.layout.HUDHeight > r.layout.FontSize {
		x = hudMargin
	}
	if r.layout.HUDHeight < 2*r.layout.FontSize {
		y := boardHeight + (r.layout.HUDHeight-r.layout.FontSize)/2
		c.DrawText(score+"  "+session, x, y, r.layout.FontSize, types.TextColor)
		return
	}
	y := boardHeight + (r.layout.HUDHeight-2*r.layout.FontSize)/2
	c.DrawText(score, x, y, r.layout.FontSize, types.TextColor)
	c.DrawText(session, x, y+r.layout.FontSize, r.layout.FontSize, types.TextColor)
}

// recentScores lists the last few round scores, oldest first
func recentScores(history []manager.RoundRecord) string {
	if len(history) > recentRounds {
		history = history[len(history)-recentRounds:]
	}
	if len(history) == 0 {
		return "-"
	}
	scores := make([]string, len(history))
	for i, round := range history {
		scores[i] = strconv.Itoa(round.Score())
	}
	return strings.Join(scores, " ")
}
