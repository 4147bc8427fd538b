package render

import (
	"fmt"
	"io"

	"github.com/tomz197/invaders/internal/draw"
)

// ANSI renders with raw escape sequences, for local raw-mode terminals and SSH sessions.
type ANSI struct {
	painter
	w        io.Writer
	out      *draw.ChunkWriter
	sizeFunc draw.TermSizeFunc
	border   bool // border must be redrawn on the next Present
}

var _ Renderer = (*ANSI)(nil)

// NewANSI creates an ANSI renderer writing to w. sizeFunc reports the terminal size;
// nil uses draw.DefaultTermSizeFunc.
func NewANSI(w io.Writer, sizeFunc draw.TermSizeFunc) *ANSI {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	a := &ANSI{
		painter:  newPainter(),
		w:        w,
		out:      draw.NewChunkWriter(w),
		sizeFunc: sizeFunc,
	}
	if tw, th, err := sizeFunc(); err == nil {
		a.fit(tw, th)
	}
	a.border = true
	return a
}

// Start hides the cursor and clears the terminal.
func (a *ANSI) Start() {
	draw.HideCursor(a.w)
	draw.ClearScreen(a.w)
}

// Stop restores the cursor and clears the terminal.
func (a *ANSI) Stop() {
	fmt.Fprint(a.w, "\033[0m")
	draw.ClearScreen(a.w)
	draw.ShowCursor(a.w)
}

// Clear checks for a terminal resize and starts a new frame.
// On a size change the terminal is wiped to remove pixels outside the new canvas.
func (a *ANSI) Clear() {
	if tw, th, err := a.sizeFunc(); err == nil && a.fit(tw, th) {
		draw.ClearScreen(a.out)
		a.canvas.ForceRedraw()
		a.border = true
	}
	a.canvas.Clear()
}

// Present writes the changed cells of the frame to the terminal.
func (a *ANSI) Present() error {
	if a.border {
		if err := a.canvas.RenderBorder(a.out); err != nil {
			return fmt.Errorf("render border: %w", err)
		}
		a.border = false
	}
	if err := a.canvas.Render(a.out); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if err := a.out.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
