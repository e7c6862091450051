package ui

import (
	"sync"
	"time"

	"snek/game/types"

	"github.com/gdamore/tcell/v2"
)

// TerminalLayout maps one board cell to one terminal row and two columns
var TerminalLayout = Layout{CellSize: 1, LineThickness: 0, HUDHeight: 1, FontSize: 1}

const (
	blockRune   = '█'
	cellColumns = 2
)

var terminalKeys = map[tcell.Key]types.Key{
	tcell.KeyLeft:  types.KeyLeft,
	tcell.KeyRight: types.KeyRight,
	tcell.KeyUp:    types.KeyUp,
	tcell.KeyDown:  types.KeyDown,
}

// TerminalBackend renders into a tcell screen. A terminal only reports key
// presses, so a pressed arrow counts as held for the frame that follows it.
type TerminalBackend struct {
	types.Random

	screen     tcell.Screen
	events     chan tcell.Event
	done       chan struct{} // closed by Close
	stopped    chan struct{} // closed when pump returns
	closeOnce  sync.Once
	ticker     *time.Ticker
	held       map[types.Key]bool
	background types.Color
	closed     bool
}

// NewTerminalBackend initialises screen and starts pumping its events. A nil
// screen opens the controlling terminal.
func NewTerminalBackend(screen tcell.Screen, targetFPS int, rng types.Random) (*TerminalBackend, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	b := &TerminalBackend{
		Random:     rng,
		screen:     screen,
		events:     make(chan tcell.Event, 100),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		ticker:     time.NewTicker(time.Second / time.Duration(targetFPS)),
		held:       make(map[types.Key]bool),
		background: types.Background,
	}
	go b.pump()
	return b, nil
}

// pump forwards events until the screen is finalised or the backend closed
func (b *TerminalBackend) pump() {
	defer close(b.stopped)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			close(b.events)
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

func (b *TerminalBackend) ShouldClose() bool {
	return b.closed
}

func (b *TerminalBackend) BeginFrame() {}

func (b *TerminalBackend) Clear(color types.Color) {
	b.background = color
	b.screen.SetStyle(tcell.StyleDefault.Background(toTerminal(color)))
	b.screen.Clear()
}

// EndFrame shows the frame, waits for the next tick and latches input
func (b *TerminalBackend) EndFrame() {
	b.screen.Show()
	<-b.ticker.C
	b.pollInput()
}

func (b *TerminalBackend) pollInput() {
	for key := range b.held {
		delete(b.held, key)
	}
	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				b.closed = true
				return
			}
			b.handleEvent(ev)
		default:
			return
		}
	}
}

func (b *TerminalBackend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0) {
			b.closed = true
			return
		}
		if key, ok := terminalKeys[ev.Key()]; ok {
			b.held[key] = true
		}
	case *tcell.EventResize:
		b.screen.Sync()
	}
}

func (b *TerminalBackend) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.ticker.Stop()
		b.screen.Fini()
	})
	return nil
}

func (b *TerminalBackend) IsKeyDown(key types.Key) bool {
	return b.held[key]
}

func (b *TerminalBackend) DrawRectangle(x, y, width, height int, color types.Color) {
	style := tcell.StyleDefault.
		Foreground(toTerminal(blend(color, b.background))).
		Background(toTerminal(b.background))
	for row := y; row < y+height; row++ {
		for col := x * cellColumns; col < (x+width)*cellColumns; col++ {
			b.screen.SetContent(col, row, blockRune, nil, style)
		}
	}
}

func (b *TerminalBackend) DrawText(text string, x, y, fontSize int, color types.Color) {
	style := tcell.StyleDefault.
		Foreground(toTerminal(blend(color, b.background))).
		Background(toTerminal(b.background))
	col := x * cellColumns
	for _, r := range text {
		b.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func toTerminal(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend composites c over an opaque background
func blend(c, background types.Color) types.Color {
	mix := func(fg, bg uint8) uint8 {
		return uint8((int(fg)*int(c.A) + int(bg)*(255-int(c.A))) / 255)
	}
	return types.Color{
		R: mix(c.R, background.R),
		G: mix(c.G, background.G),
		B: mix(c.B, background.B),
		A: 255,
	}
}
