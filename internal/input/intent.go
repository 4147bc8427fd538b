package input

// Intent is a discrete control request delivered to the game session.
type Intent int

const (
	MoveLeftStart Intent = iota
	MoveLeftStop
	MoveRightStart
	MoveRightStop
	Fire
	TogglePause
	Restart
	Quit
)

var intentNames = [...]string{
	MoveLeftStart:  "move-left-start",
	MoveLeftStop:   "move-left-stop",
	MoveRightStart: "move-right-start",
	MoveRightStop:  "move-right-stop",
	Fire:           "fire",
	TogglePause:    "toggle-pause",
	Restart:        "restart",
	Quit:           "quit",
}

// String returns the intent name.
func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// Tracker converts per-frame key state into intents, emitting start/stop
// pairs on held-state transitions.
type Tracker struct {
	left, right bool
}

// Intents returns the intents implied by in, stops before starts.
func (t *Tracker) Intents(in Input) []Intent {
	var out []Intent
	if t.left && !in.Left {
		out = append(out, MoveLeftStop)
	}
	if t.right && !in.Right {
		out = append(out, MoveRightStop)
	}
	if !t.left && in.Left {
		out = append(out, MoveLeftStart)
	}
	if !t.right && in.Right {
		out = append(out, MoveRightStart)
	}
	t.left, t.right = in.Left, in.Right

	if in.Fire {
		out = append(out, Fire)
	}
	if in.Pause {
		out = append(out, TogglePause)
	}
	if in.Restart {
		out = append(out, Restart)
	}
	if in.Quit {
		out = append(out, Quit)
	}
	return out
}

// Reset forgets held keys, so the next held key emits a fresh start.
func (t *Tracker) Reset() {
	t.left, t.right = false, false
}
