package types

// Board dimensions
const (
	Rows = 15
	Cols = 15
)

// Cell is a grid coordinate
type Cell struct {
	Row int
	Col int
}

// Add returns the cell reached by stepping once in dir
func (c Cell) Add(dir Direction) Cell {
	return Cell{Row: c.Row + dir.DY, Col: c.Col + dir.DX}
}

// InBounds reports whether the cell lies on the board
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Direction is a unit step, DX moves across columns and DY across rows
type Direction struct {
	DX, DY int
}

var (
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
)

// Color is an RGBA color independent of the drawing backend
type Color struct {
	R, G, B, A uint8
}

var (
	Background  = Color{R: 255, G: 255, B: 255, A: 255}
	LineColor   = Color{R: 0, G: 0, B: 0, A: 64}
	SnakeColor  = Color{R: 0, G: 0, B: 0, A: 255}
	PelletColor = Color{R: 255, G: 0, B: 0, A: 64}
	TextColor   = Color{R: 40, G: 40, B: 40, A: 255}
)

// Key identifies one of the directional keys the game polls
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// Input reports which keys are currently held
type Input interface {
	IsKeyDown(key Key) bool
}

// Random yields a uniform integer in [min, max]
type Random interface {
	Between(min, max int) int
}

// LossCause represents why a round ended
type LossCause int

const (
	NoLoss LossCause = iota
	OutOfBounds
	SelfCollision
	BoardFull
)

func (c LossCause) String() string {
	switch c {
	case OutOfBounds:
		return "out of bounds"
	case SelfCollision:
		return "self collision"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}
