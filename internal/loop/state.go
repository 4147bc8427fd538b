package loop

// GameState represents the current phase of a session.
type GameState int

const (
	GameStateRunning GameState = iota // Entities update every frame
	GameStatePaused                   // Frozen until unpaused or restarted
	GameStateOver                     // Lives exhausted or formation breached
)

// String returns the state name.
func (g GameState) String() string {
	switch g {
	case GameStateRunning:
		return "running"
	case GameStatePaused:
		return "paused"
	case GameStateOver:
		return "game over"
	default:
		return "unknown"
	}
}

// overlay returns the status text drawn over the playfield, if any.
func (g GameState) overlay() string {
	switch g {
	case GameStatePaused:
		return "PAUSED"
	case GameStateOver:
		return "GAME OVER"
	default:
		return ""
	}
}
