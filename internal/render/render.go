// Package render draws the playfield. A Renderer receives one Clear followed by
// the frame's images and texts in logical playfield coordinates; backends map
// them to a terminal.
package render

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
)

// Align anchors a text horizontally on its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Renderer is the drawing surface the game draws into.
type Renderer interface {
	// Clear starts a new frame.
	Clear()
	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(x, y float64, img *asset.Image)
	// DrawText draws s on the row containing y, anchored at x.
	DrawText(x, y float64, s string, align Align)
}

// textColor is used for every HUD text.
const textColor = draw.ColorWhite

// painter draws frames onto a Canvas; backends embed it and differ only in
// how the canvas reaches the terminal.
type painter struct {
	canvas *draw.Canvas
}

func newPainter() painter {
	return painter{canvas: draw.NewScaledCanvas(1, 1, config.ScreenWidth, config.ScreenHeight)}
}

func (p *painter) DrawImage(x, y float64, img *asset.Image) {
	if img == nil {
		return
	}
	p.canvas.FillMask(x, y, img.W, img.H, img.Rows, img.Color)
}

func (p *painter) DrawText(x, y float64, s string, align Align) {
	col, row := p.canvas.LogicalToCell(x, y)
	switch align {
	case AlignCenter:
		col -= draw.TextWidth(s) / 2
	case AlignRight:
		col -= draw.TextWidth(s)
	}
	p.canvas.PutText(col, row, s, textColor)
}

// fit resizes the canvas for a terminal of termW x termH and reports whether
// its size or placement changed.
func (p *painter) fit(termW, termH int) bool {
	w, h, offCol, offRow := draw.FitAspect(termW, termH, config.ScreenWidth, config.ScreenHeight)
	changed := w != p.canvas.TerminalWidth() || h != p.canvas.TerminalHeight() ||
		offCol != p.canvas.OffsetCol() || offRow != p.canvas.OffsetRow()
	p.canvas.Resize(w, h)
	p.canvas.SetOffset(offCol, offRow)
	return changed
}

// Canvas exposes the backing canvas for inspection.
func (p *painter) Canvas() *draw.Canvas {
	return p.canvas
}
