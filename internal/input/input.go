// Package input turns terminal key presses into game intents.
//
// Terminals report key presses and auto-repeats but no releases, so a movement
// key counts as held for a short while after its last press.
package input

import (
	"bufio"
	"time"

	"github.com/gdamore/tcell/v2"
)

// holdDuration is how long a movement key is considered held after its last press.
const holdDuration = 150 * time.Millisecond

// Key is a game key after mapping from raw bytes or tcell events.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	KeyRestart
	KeyQuit
)

// Input is the key state seen by one frame.
type Input struct {
	Left    bool // held
	Right   bool // held
	Fire    bool // pressed since the previous frame
	Pause   bool
	Restart bool
	Quit    bool // pressed, or the input source closed
	Pressed int  // keys received since the previous frame
}

// Stream delivers keys from a producer goroutine to the frame loop.
type Stream struct {
	ch        chan Key
	closed    bool
	lastLeft  time.Time
	lastRight time.Time
}

// NewStream creates a Stream with no producer; keys arrive via Push.
func NewStream() *Stream {
	return &Stream{ch: make(chan Key, 128)}
}

// Push delivers k, dropping it when the buffer is full.
func (s *Stream) Push(k Key) {
	select {
	case s.ch <- k:
	default:
	}
}

// StartStream spawns a goroutine that reads raw terminal bytes from r.
// The stream closes when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := NewStream()
	go func() {
		defer close(s.ch)
		readKeys(r, s.Push)
	}()
	return s
}

// readKeys parses bytes from r into keys until r fails.
// Arrow keys arrive as ESC [ C / ESC [ D, possibly split across reads, so an
// ESC waits for the byte after it. A bare ESC maps to nothing; restart is r.
func readKeys(r *bufio.Reader, emit func(Key)) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b == '\x1b' {
			next, err := r.ReadByte()
			if err != nil {
				return
			}
			if next != '[' {
				_ = r.UnreadByte()
				continue
			}
			code, err := r.ReadByte()
			if err != nil {
				return
			}
			switch code {
			case 'C':
				emit(KeyRight)
			case 'D':
				emit(KeyLeft)
			}
			continue
		}
		if k := byteKey(b); k != KeyNone {
			emit(k)
		}
	}
}

func byteKey(b byte) Key {
	switch b {
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ':
		return KeyFire
	case 'p', 'P':
		return KeyPause
	case 'r', 'R':
		return KeyRestart
	case 'q', 'Q', '\x03':
		return KeyQuit
	}
	return KeyNone
}

// StartScreenStream spawns a goroutine that polls key events from a tcell screen.
// The stream closes when the screen is finalized.
func StartScreenStream(screen tcell.Screen) *Stream {
	s := NewStream()
	go func() {
		defer close(s.ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if kev, ok := ev.(*tcell.EventKey); ok {
				if k := eventKey(kev); k != KeyNone {
					s.Push(k)
				}
			}
		}
	}()
	return s
}

func eventKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape:
		return KeyRestart
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x80 {
			return byteKey(byte(r))
		}
	}
	return KeyNone
}

// Read drains every pending key without blocking and returns the frame's input.
func (s *Stream) Read(now time.Time) Input {
	var in Input
drain:
	for !s.closed {
		select {
		case k, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			in.Pressed++
			switch k {
			case KeyLeft:
				s.lastLeft = now
				s.lastRight = time.Time{}
			case KeyRight:
				s.lastRight = now
				s.lastLeft = time.Time{}
			case KeyFire:
				in.Fire = true
			case KeyPause:
				in.Pause = true
			case KeyRestart:
				in.Restart = true
			case KeyQuit:
				in.Quit = true
			}
		default:
			break drain
		}
	}

	in.Left = !s.lastLeft.IsZero() && now.Sub(s.lastLeft) < holdDuration
	in.Right = !s.lastRight.IsZero() && now.Sub(s.lastRight) < holdDuration
	if s.closed {
		in.Quit = true
	}
	return in
}
