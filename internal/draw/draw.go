// Package draw provides a colored half-block canvas and ANSI terminal helpers.
package draw

import "strconv"

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette index. ColorNone is the terminal default (transparent).
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGreen
	ColorRed
	ColorMagenta
	ColorCyan
	ColorYellow
	ColorGray
)

// xterm holds the 256-color index for every palette entry.
var xterm = [...]int{
	ColorNone:    -1,
	ColorWhite:   15,
	ColorGreen:   10,
	ColorRed:     9,
	ColorMagenta: 13,
	ColorCyan:    14,
	ColorYellow:  11,
	ColorGray:    244,
}

// XTerm returns the xterm-256 index of c, or -1 for ColorNone.
func (c Color) XTerm() int {
	if int(c) >= len(xterm) {
		return -1
	}
	return xterm[c]
}

// Cell is one composed terminal cell.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Blank is an empty cell.
var Blank = Cell{Rune: BlockEmpty}

// appendSGR appends the escape sequence selecting fg/bg.
func appendSGR(buf []byte, fg, bg Color) []byte {
	buf = append(buf, "\033["...)
	if n := fg.XTerm(); n < 0 {
		buf = append(buf, "39"...)
	} else {
		buf = append(buf, "38;5;"...)
		buf = strconv.AppendInt(buf, int64(n), 10)
	}
	buf = append(buf, ';')
	if n := bg.XTerm(); n < 0 {
		buf = append(buf, "49"...)
	} else {
		buf = append(buf, "48;5;"...)
		buf = strconv.AppendInt(buf, int64(n), 10)
	}
	return append(buf, 'm')
}
