package draw

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
)

// maxChunkSize is the maximum bytes to write at once for smooth network flow.
// 1400 bytes stays below a typical MTU for SSH sessions.
const maxChunkSize = 1400

// ChunkWriter accumulates a frame of terminal output and writes it to the
// underlying writer in MTU-sized chunks on Flush. Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf  strings.Builder
	bufw *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// Len returns the number of bytes waiting for Flush.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		if err := cw.bufw.Flush(); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// FitAspect picks the largest canvas, in terminal cells, that fits a termWidth x termHeight
// terminal (capped at the max render resolution) while keeping the logical aspect ratio.
// Half-block rendering makes one cell one pixel wide and two pixels tall.
// The offsets center the canvas in the terminal.
func FitAspect(termWidth, termHeight int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	maxW := min(termWidth, config.MaxTermWidth)
	maxH := min(termHeight, config.MaxTermHeight)
	colsPerRow := 2 * logicalWidth / logicalHeight

	height = maxH
	width = int(math.Round(float64(height) * colsPerRow))
	if width > maxW {
		width = maxW
		height = int(math.Round(float64(width) / colsPerRow))
	}
	width = max(width, 1)
	height = max(height, 1)

	offsetCol = max((termWidth-width)/2, 0)
	offsetRow = max((termHeight-height)/2, 0)
	return width, height, offsetCol, offsetRow
}
