package loop

import (
	"strconv"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/render"
)

// Session owns every entity of one game and runs its frames.
// It is not safe for concurrent use: intents, Update and Draw all run on the frame goroutine.
type Session struct {
	Player    *object.Player
	Formation *object.Formation
	Enemies   []*object.Enemy
	Bonus     *object.Bonus
	Shields   []*object.Shield

	score int
	level int
	state GameState

	// Requests queued by intents and applied at the start of the next Update.
	fireQueued    bool
	pauseQueued   bool
	restartQueued bool

	audio audio.Player
	rnd   object.Rand

	playerTargets []object.Target // what player projectiles can hit, in check order
	enemyTargets  []object.Target // what enemy projectiles can hit, in check order
}

var _ object.World = (*Session)(nil)

// NewSession builds a fresh game: 55 enemies, 4 shields, a dead bonus target
// and a ship with full lives.
func NewSession(lib asset.Loader, au audio.Player, rnd object.Rand) *Session {
	if au == nil {
		au = audio.Silent{}
	}
	s := &Session{
		Player:    object.NewPlayer(lib),
		Formation: object.NewFormation(lib),
		Bonus:     object.NewBonus(lib),
		level:     1,
		state:     GameStateRunning,
		audio:     au,
		rnd:       rnd,
	}
	for i := range config.ShieldCount {
		s.Shields = append(s.Shields, object.NewShield(object.ShieldPos(i), lib))
	}
	for row := range config.FormationRows {
		for col := range config.FormationCols {
			s.Enemies = append(s.Enemies, object.NewEnemy(col, row, s.Formation, lib))
		}
	}

	for _, e := range s.Enemies {
		s.playerTargets = append(s.playerTargets, e)
	}
	s.playerTargets = append(s.playerTargets, s.Formation.Bullets, s.Bonus)
	s.enemyTargets = append(s.enemyTargets, s.Player)
	for _, sh := range s.Shields {
		s.playerTargets = append(s.playerTargets, sh)
		s.enemyTargets = append(s.enemyTargets, sh)
	}
	return s
}

// Float64 returns the next random roll.
func (s *Session) Float64() float64 {
	return s.rnd.Float64()
}

// AddScore adds points to the score.
func (s *Session) AddScore(points int) {
	s.score += points
}

// PlaySound hands snd to the audio collaborator.
func (s *Session) PlaySound(snd *asset.Sound) {
	s.audio.Play(snd)
}

// EndGame switches to GameStateOver.
func (s *Session) EndGame() {
	s.state = GameStateOver
}

// State returns the current phase.
func (s *Session) State() GameState {
	return s.state
}

// Score returns the score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// AliveEnemies returns the number of enemies that are neither dead nor exploding.
func (s *Session) AliveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Hittable() {
			n++
		}
	}
	return n
}

// LiveCells returns the number of shield cells still standing.
func (s *Session) LiveCells() int {
	n := 0
	for _, sh := range s.Shields {
		n += sh.LiveCells()
	}
	return n
}

// Handle applies a control intent. Movement takes effect at once; fire, pause
// and restart are queued for the next Update. Movement and fire are ignored
// unless the game is running, and a stop only cancels its own direction.
func (s *Session) Handle(it input.Intent) {
	running := s.state == GameStateRunning
	switch it {
	case input.MoveLeftStart:
		if running {
			s.Player.MoveLeft()
		}
	case input.MoveRightStart:
		if running {
			s.Player.MoveRight()
		}
	case input.MoveLeftStop:
		if running && s.Player.DX() < 0 {
			s.Player.Stop()
		}
	case input.MoveRightStop:
		if running && s.Player.DX() > 0 {
			s.Player.Stop()
		}
	case input.Fire:
		if running {
			s.fireQueued = true
		}
	case input.TogglePause:
		s.pauseQueued = true
	case input.Restart:
		s.restartQueued = true
	}
}

// TogglePause switches between running and paused. It does nothing after game over.
func (s *Session) TogglePause() {
	switch s.state {
	case GameStateRunning:
		s.state = GameStatePaused
	case GameStatePaused:
		s.state = GameStateRunning
	}
}

// Restart starts a new game. It is only honored while paused or after game
// over and reports whether it happened.
func (s *Session) Restart() bool {
	if s.state == GameStateRunning {
		return false
	}
	s.score = 0
	s.level = 1
	s.Player.Reset()
	for _, e := range s.Enemies {
		e.Reset()
	}
	for _, sh := range s.Shields {
		sh.Reset()
	}
	s.Formation.Reset()
	s.Bonus.Reset()
	s.state = GameStateRunning
	return true
}

// NextLevel brings the formation back for the next level. Score, lives and
// shields carry over.
func (s *Session) NextLevel() {
	for _, e := range s.Enemies {
		e.Reset()
	}
	s.Formation.Reset()
	s.Bonus.Reset()
	s.level++
	s.state = GameStateRunning
}

func (s *Session) applyQueued() {
	if s.restartQueued {
		s.restartQueued = false
		if s.Restart() {
			s.pauseQueued = false
		}
	}
	if s.pauseQueued {
		s.pauseQueued = false
		s.TogglePause()
	}
	if s.fireQueued {
		s.fireQueued = false
		if s.state == GameStateRunning {
			s.Player.Fire(s)
		}
	}
}

// Update runs one frame of the simulation. Nothing moves unless the game is running.
func (s *Session) Update() {
	s.applyQueued()
	if s.state != GameStateRunning {
		return
	}

	s.Player.Update(object.UpdateContext{World: s, Targets: s.playerTargets})

	ctx := object.UpdateContext{World: s}
	s.Formation.PreUpdate()
	for _, e := range s.Enemies {
		e.Update(ctx)
	}
	if s.Formation.PostUpdate() {
		s.NextLevel()
	}

	for _, e := range s.Enemies {
		s.Player.Collide(s, e)
	}

	s.Formation.UpdateBullets(object.UpdateContext{World: s, Targets: s.enemyTargets})

	s.Bonus.Update(ctx)
	s.Bonus.MaybeSpawn(s)
}

// Draw renders the frame: HUD, player, enemies, shields, enemy projectiles,
// bonus target and the status overlay, in that order.
func (s *Session) Draw(r render.Renderer) {
	r.Clear()

	object.Text{
		X: config.ScreenWidth - config.HUDMargin, Y: config.HUDMargin,
		Value: "Level: " + strconv.Itoa(s.level), Align: render.AlignRight,
	}.Draw(r)
	object.Text{
		X: config.ScreenWidth / 2, Y: config.HUDMargin,
		Value: "Score: " + strconv.Itoa(s.score), Align: render.AlignCenter,
	}.Draw(r)

	s.Player.Draw(r)
	for _, e := range s.Enemies {
		e.Draw(r)
	}
	for _, sh := range s.Shields {
		sh.Draw(r)
	}
	s.Formation.Draw(r)
	s.Bonus.Draw(r)

	object.Text{
		X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2,
		Value: s.state.overlay(), Align: render.AlignCenter,
	}.Draw(r)
}
