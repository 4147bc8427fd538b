package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/invaders/internal/draw"
)

// Screen renders onto a tcell screen.
type Screen struct {
	painter
	screen tcell.Screen
}

var _ Renderer = (*Screen)(nil)

// NewScreen creates a renderer for an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	r := &Screen{painter: newPainter(), screen: s}
	r.fit(s.Size())
	return r
}

// Clear picks up the current screen size and starts a new frame.
func (r *Screen) Clear() {
	if r.fit(r.screen.Size()) {
		r.screen.Clear()
	}
	r.canvas.Clear()
}

// Present copies the frame to the screen and shows it.
func (r *Screen) Present() {
	offCol, offRow := r.canvas.OffsetCol(), r.canvas.OffsetRow()
	for row := 0; row < r.canvas.TerminalHeight(); row++ {
		for col := 0; col < r.canvas.TerminalWidth(); col++ {
			cell := r.canvas.Cell(col, row)
			r.screen.SetContent(offCol+col, offRow+row, cell.Rune, nil, cellStyle(cell))
		}
	}
	r.screen.Show()
}

func cellStyle(c draw.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(c.FG)).Background(tcellColor(c.BG))
}

func tcellColor(c draw.Color) tcell.Color {
	n := c.XTerm()
	if n < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}
