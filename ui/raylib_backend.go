package ui

import (
	"snek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var raylibKeys = map[types.Key]int32{
	types.KeyLeft:  rl.KeyLeft,
	types.KeyRight: rl.KeyRight,
	types.KeyUp:    rl.KeyUp,
	types.KeyDown:  rl.KeyDown,
}

// RaylibBackend draws into a native window. Layout units are pixels.
type RaylibBackend struct{}

// NewRaylibBackend opens the window. A zero seed keeps raylib's own seeding.
func NewRaylibBackend(title string, layout Layout, targetFPS int, seed uint64) *RaylibBackend {
	width, height := layout.WindowSize()
	if seed != 0 {
		rl.SetRandomSeed(uint32(seed))
	}
	rl.SetTargetFPS(int32(targetFPS))
	rl.InitWindow(int32(width), int32(height), title)
	return &RaylibBackend{}
}

func toRaylib(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (b *RaylibBackend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (b *RaylibBackend) BeginFrame() {
	rl.BeginDrawing()
}

func (b *RaylibBackend) Clear(color types.Color) {
	rl.ClearBackground(toRaylib(color))
}

func (b *RaylibBackend) EndFrame() {
	rl.EndDrawing()
}

func (b *RaylibBackend) Close() error {
	rl.CloseWindow()
	return nil
}

func (b *RaylibBackend) DrawRectangle(x, y, width, height int, color types.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toRaylib(color))
}

func (b *RaylibBackend) DrawText(text string, x, y, fontSize int, color types.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(fontSize), toRaylib(color))
}

func (b *RaylibBackend) IsKeyDown(key types.Key) bool {
	return rl.IsKeyDown(raylibKeys[key])
}

// Between uses raylib's generator, bounds inclusive
func (b *RaylibBackend) Between(min, max int) int {
	return int(rl.GetRandomValue(int32(min), int32(max)))
}
