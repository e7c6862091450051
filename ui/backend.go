package ui

import (
	"snek/game/types"
)

// Canvas receives the draw calls of a frame. Coordinates are in layout units.
type Canvas interface {
	DrawRectangle(x, y, width, height int, color types.Color)
	DrawText(text string, x, y, fontSize int, color types.Color)
}

// Backend is the windowing, drawing, input and randomness collaborator
type Backend interface {
	Canvas
	types.Input
	types.Random

	ShouldClose() bool
	BeginFrame()
	Clear(color types.Color)
	EndFrame()
	Close() error
}
