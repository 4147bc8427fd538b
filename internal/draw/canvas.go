package draw

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels, a text layer
// on top of the pixels, and incremental output of only the cells that changed.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	text           []Cell  // One entry per terminal cell; Rune 0 means no text
	prev           []Cell  // Last frame written by Render
	prevValid      bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger than it.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf []byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the terminal dimensions the canvas occupies.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.text = make([]Cell, termWidth*termHeight)
		c.prev = make([]Cell, termWidth*termHeight)
		c.prevValid = false
	}

	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// Clear resets all pixels and text.
func (c *Canvas) Clear() {
	clear(c.pixels)
	clear(c.text)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// Pixel returns the color of the sub-pixel at (x, y), ColorNone when out of range.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// span converts a logical interval to the inclusive pixel range it covers.
// Every non-empty interval covers at least one pixel.
func span(start, length, scale float64) (int, int) {
	p0 := int(math.Floor(start * scale))
	p1 := int(math.Ceil((start+length)*scale)) - 1
	if p1 < p0 {
		p1 = p0
	}
	return p0, p1
}

// LogicalToCell converts logical coordinates to a 0-based canvas cell (col, row).
func (c *Canvas) LogicalToCell(x, y float64) (col, row int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y*c.scaleY)) / 2
}

// PutText writes s on the text layer starting at the 0-based cell (col, row).
// Characters falling outside the canvas are dropped.
func (c *Canvas) PutText(col, row int, s string, color Color) {
	if row < 0 || row >= c.termHeight {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.termWidth {
			c.text[row*c.termWidth+col] = Cell{Rune: r, FG: color}
		}
		col++
	}
}

// TextWidth returns the number of cells s occupies.
func TextWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// Cell composes the terminal cell at (col, row) from the text and pixel layers.
func (c *Canvas) Cell(col, row int) Cell {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return Blank
	}
	if t := c.text[row*c.termWidth+col]; t.Rune != 0 {
		return t
	}

	top := c.pixels[(row*2)*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top == ColorNone && bottom == ColorNone:
		return Blank
	case top == bottom:
		return Cell{Rune: BlockFull, FG: top}
	case bottom == ColorNone:
		return Cell{Rune: BlockUpperHalf, FG: top}
	case top == ColorNone:
		return Cell{Rune: BlockLowerHalf, FG: bottom}
	default:
		return Cell{Rune: BlockUpperHalf, FG: top, BG: bottom}
	}
}

// Render writes the cells that changed since the previous Render to w.
// After a resize, offset change or ForceRedraw every cell is written.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]
	full := !c.prevValid

	var fg, bg Color
	sgrSet := false
	cursorCol, cursorRow := -1, -1

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cell := c.Cell(col, row)
			idx := row*c.termWidth + col
			if !full && c.prev[idx] == cell {
				continue
			}
			c.prev[idx] = cell

			if cursorRow != row || cursorCol != col {
				buf = appendMove(buf, col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !sgrSet || cell.FG != fg || cell.BG != bg {
				buf = appendSGR(buf, cell.FG, cell.BG)
				fg, bg, sgrSet = cell.FG, cell.BG, true
			}
			buf = utf8.AppendRune(buf, cell.Rune)
			cursorCol, cursorRow = col+1, row
		}
	}
	if sgrSet {
		buf = append(buf, "\033[0m"...)
	}

	c.prevValid = true
	c.renderBuf = buf
	if len(buf) == 0 {
		return nil
	}
	_, err := w.Write(buf)
	return err
}

// RenderBorder draws a frame around the canvas when there is room for one.
func (c *Canvas) RenderBorder(w io.Writer) error {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return nil
	}
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf []byte
	buf = appendSGR(buf, ColorGray, ColorNone)
	for col := left; col <= right; col++ {
		ch := '─'
		switch col {
		case left:
			ch = '┌'
		case right:
			ch = '┐'
		}
		buf = appendMove(buf, col, top)
		buf = utf8.AppendRune(buf, ch)

		switch col {
		case left:
			ch = '└'
		case right:
			ch = '┘'
		default:
			ch = '─'
		}
		buf = appendMove(buf, col, bottom)
		buf = utf8.AppendRune(buf, ch)
	}
	for row := top + 1; row < bottom; row++ {
		buf = appendMove(buf, left, row)
		buf = append(buf, "│"...)
		buf = appendMove(buf, right, row)
		buf = append(buf, "│"...)
	}
	buf = append(buf, "\033[0m"...)

	_, err := w.Write(buf)
	return err
}

// appendMove appends an absolute 1-based cursor position sequence.
func appendMove(buf []byte, col, row int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}
