package ui

import (
	"snek/game"
	"snek/game/types"
)

// Run drives one tick per frame until the backend asks to close.
// Closing is only observed between frames.
func Run(b Backend, g *game.Game, r *Renderer) {
	for !b.ShouldClose() {
		g.Frame(b)

		b.BeginFrame()
		b.Clear(types.Background)
		r.Draw(b, g)
		b.EndFrame()
	}
}
