package loop

import (
	"slices"
	"testing"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// scriptRand serves rolls in order, then 0.99 forever: no enemy fires and
// the bonus target never spawns unless a test scripts it.
type scriptRand struct {
	rolls []float64
}

func (r *scriptRand) Float64() float64 {
	if len(r.rolls) == 0 {
		return 0.99
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v
}

func newTestSession() (*Session, *scriptRand, *audio.Recorder) {
	rnd := &scriptRand{}
	au := &audio.Recorder{}
	return NewSession(asset.NewLibrary(nil), au, rnd), rnd, au
}

func enemyCenters(s *Session) []physics.Point {
	var out []physics.Point
	for _, e := range s.Enemies {
		out = append(out, e.Center())
	}
	return out
}

func TestFreshSession(t *testing.T) {
	s, _, _ := newTestSession()
	if s.Score() != 0 || s.Level() != 1 || s.Player.Lives() != 4 {
		t.Errorf("score %d level %d lives %d", s.Score(), s.Level(), s.Player.Lives())
	}
	if len(s.Enemies) != 55 || s.AliveEnemies() != 55 {
		t.Errorf("%d enemies, %d alive", len(s.Enemies), s.AliveEnemies())
	}
	if !s.Bonus.IsDead() {
		t.Error("bonus target starts alive")
	}
	if s.LiveCells() != 32 {
		t.Errorf("LiveCells = %d", s.LiveCells())
	}
	if s.State() != GameStateRunning {
		t.Errorf("State = %v", s.State())
	}
}

func TestRapidFireRespectsCooldownAndPool(t *testing.T) {
	s, _, au := newTestSession()

	for range 6 {
		s.Handle(input.Fire)
		s.Update()
	}
	if got := s.Player.Bullets.Live(); got != 1 {
		t.Fatalf("%d projectiles after six rapid shots, want 1", got)
	}
	if got := au.Played(); !slices.Equal(got, []asset.Cue{asset.CueShoot}) {
		t.Errorf("played %v", got)
	}

	for range 300 {
		s.Handle(input.Fire)
		s.Update()
		if live := s.Player.Bullets.Live(); live > config.PoolSize {
			t.Fatalf("%d live player projectiles", live)
		}
	}
}

func TestMovementIntents(t *testing.T) {
	s, _, _ := newTestSession()

	s.Handle(input.MoveLeftStart)
	s.Update()
	if s.Player.Pos.X != 422 {
		t.Fatalf("x = %v after moving left", s.Player.Pos.X)
	}

	s.Handle(input.MoveRightStop)
	s.Update()
	if s.Player.Pos.X != 419 {
		t.Fatal("stopping the other direction stopped the ship")
	}

	s.Handle(input.MoveLeftStop)
	s.Update()
	if s.Player.Pos.X != 419 || s.Player.DX() != 0 {
		t.Fatal("ship kept moving after stop")
	}
}

func TestKillingEveryEnemyAdvancesLevel(t *testing.T) {
	s, _, _ := newTestSession()
	s.Update()
	lives := s.Player.Lives()

	for _, e := range s.Enemies {
		e.CheckHit(s, object.NewProjectile(object.SidePlayer, nil, e.Center()))
	}
	wantScore := config.FormationCols * (30 + 20 + 20 + 10 + 10)
	if s.Score() != wantScore {
		t.Fatalf("score %d, want %d", s.Score(), wantScore)
	}

	s.Update()
	if s.Level() != 2 {
		t.Fatalf("level %d, want 2", s.Level())
	}
	if s.AliveEnemies() != 55 {
		t.Errorf("%d enemies alive after the level reset", s.AliveEnemies())
	}
	for _, e := range s.Enemies {
		if e.Center().X != object.StartX(e.Col) {
			t.Fatalf("enemy %d,%d at x=%v", e.Col, e.Row, e.Center().X)
		}
	}
	if s.Formation.RowY(0) != config.RowTop || s.Formation.Speed() != config.InitialSpeed {
		t.Error("formation not reset")
	}
	if s.Score() != wantScore || s.Player.Lives() != lives || s.State() != GameStateRunning {
		t.Errorf("score %d lives %d state %v", s.Score(), s.Player.Lives(), s.State())
	}
}

func TestLivesExhaustedEndsGame(t *testing.T) {
	s, _, au := newTestSession()

	for i := range config.InitialLives {
		if s.State() != GameStateRunning {
			t.Fatalf("game over after %d hits", i)
		}
		s.Formation.Bullets.Fire(nil, s.Player.Pos.Add(0, -config.EnemyBulletSpeed))
		s.Update()
	}
	if s.Player.Lives() != 0 || s.State() != GameStateOver {
		t.Fatalf("lives %d state %v", s.Player.Lives(), s.State())
	}
	if n := len(au.Played()); n != config.InitialLives {
		t.Errorf("%d sounds, want one per hit", n)
	}

	centers := enemyCenters(s)
	player := s.Player.Pos
	s.Handle(input.MoveLeftStart)
	s.Handle(input.Fire)
	for range 10 {
		s.Update()
	}
	if !slices.Equal(enemyCenters(s), centers) || s.Player.Pos != player || s.Player.Bullets.Live() != 0 {
		t.Fatal("entities moved after game over")
	}

	s.Handle(input.TogglePause)
	s.Update()
	if s.State() != GameStateOver {
		t.Fatal("pause left game over")
	}

	s.Handle(input.Restart)
	s.Update()
	if s.State() != GameStateRunning || s.Player.Lives() != 4 || s.Score() != 0 || s.Level() != 1 {
		t.Errorf("after restart: state %v lives %d score %d level %d", s.State(), s.Player.Lives(), s.Score(), s.Level())
	}
	if s.Player.DX() != 0 {
		t.Error("movement requested during game over leaked into the new game")
	}
}

func TestLastLifeLostOnce(t *testing.T) {
	s, _, au := newTestSession()

	for range config.InitialLives - 1 {
		s.Formation.Bullets.Fire(nil, s.Player.Pos.Add(0, -config.EnemyBulletSpeed))
		s.Update()
	}
	if s.Player.Lives() != 1 {
		t.Fatalf("lives %d, want 1", s.Player.Lives())
	}

	// Two shots reach the ship in the same frame.
	at := s.Player.Pos.Add(0, -config.EnemyBulletSpeed)
	s.Formation.Bullets.Fire(nil, at)
	s.Formation.Bullets.Fire(nil, at)
	s.Update()

	if s.Player.Lives() != 0 || s.State() != GameStateOver {
		t.Fatalf("lives %d state %v", s.Player.Lives(), s.State())
	}
	if n := len(au.Played()); n != config.InitialLives {
		t.Errorf("%d sounds, want one per life", n)
	}
	var r render.Recorder
	s.Draw(&r)
	if !slices.Contains(r.Texts(), "Lives: 0") {
		t.Errorf("texts %v", r.Texts())
	}
}

func TestPauseFreezesAndRestart(t *testing.T) {
	s, _, _ := newTestSession()

	s.Handle(input.Restart)
	s.Update()
	if s.Level() != 1 || s.State() != GameStateRunning {
		t.Fatal("restart honored while running")
	}
	if s.Enemies[0].Center().X == object.StartX(0) {
		t.Fatal("restart while running reset the formation")
	}
	for range 9 {
		s.Update()
	}

	s.Handle(input.TogglePause)
	s.Update()
	if s.State() != GameStatePaused {
		t.Fatalf("State = %v", s.State())
	}
	frozen := s.Enemies[0].Center().X
	s.Handle(input.MoveRightStart)
	s.Handle(input.Fire)
	for range 5 {
		s.Update()
	}
	if s.Enemies[0].Center().X != frozen || s.Player.DX() != 0 || s.Player.Bullets.Live() != 0 {
		t.Fatal("paused session changed")
	}

	var r render.Recorder
	s.Draw(&r)
	if texts := r.Texts(); texts[len(texts)-1] != "PAUSED" {
		t.Errorf("overlay = %q", texts[len(texts)-1])
	}

	s.Handle(input.Restart)
	s.Update()
	if s.State() != GameStateRunning || s.Enemies[0].Center().X == frozen {
		t.Error("restart from pause did not start a new game")
	}

	s.Handle(input.TogglePause)
	s.Update()
	s.Handle(input.TogglePause)
	s.Update()
	if s.State() != GameStateRunning {
		t.Error("second toggle did not resume")
	}
}

func TestRestartWinsOverPauseInSameFrame(t *testing.T) {
	s, _, _ := newTestSession()
	for range 10 {
		s.Update()
	}
	s.Handle(input.TogglePause)
	s.Update()

	s.Handle(input.TogglePause)
	s.Handle(input.Restart)
	s.Update()
	if s.State() != GameStateRunning {
		t.Fatalf("State = %v", s.State())
	}
	if x := s.Enemies[0].Center().X; x != object.StartX(0)+config.InitialSpeed {
		t.Errorf("enemy x = %v, restart did not reset the formation", x)
	}

	// While running a restart is refused and the pause still applies.
	s.Handle(input.Restart)
	s.Handle(input.TogglePause)
	s.Update()
	if s.State() != GameStatePaused {
		t.Errorf("State = %v, want paused", s.State())
	}
}

func TestFormationBreachEndsGame(t *testing.T) {
	s, _, _ := newTestSession()
	for range 10000 {
		s.Update()
		if s.State() == GameStateOver {
			break
		}
	}
	if s.State() != GameStateOver {
		t.Fatal("formation never breached")
	}
	if s.Player.Lives() != config.InitialLives {
		t.Errorf("lives %d, breach should end the game on its own", s.Player.Lives())
	}
	if !s.Formation.Breached(config.FormationRows - 1) {
		t.Error("bottom row did not cross the breach line")
	}
}

func TestPlayerShotsCancelEnemyShots(t *testing.T) {
	s, _, _ := newTestSession()
	s.Formation.Bullets.Fire(nil, physics.Point{X: 425, Y: 800})
	s.Handle(input.Fire)

	for range 10 {
		s.Update()
	}
	if s.Player.Bullets.Live() != 0 || s.Formation.Bullets.Live() != 0 {
		t.Fatalf("player %d enemy %d projectiles left", s.Player.Bullets.Live(), s.Formation.Bullets.Live())
	}
	if s.Score() != 0 || s.Player.Lives() != 4 {
		t.Errorf("score %d lives %d", s.Score(), s.Player.Lives())
	}
}

func TestShieldsBlockEnemyShots(t *testing.T) {
	s, _, _ := newTestSession()
	aim := s.Shields[0].CellRect(0, 0).Center()
	s.Formation.Bullets.Fire(nil, aim.Add(0, -config.EnemyBulletSpeed))
	s.Update()

	if s.Shields[0].Cell(0, 0).Hits() != 1 || s.Formation.Bullets.Live() != 0 {
		t.Errorf("hits %d live %d", s.Shields[0].Cell(0, 0).Hits(), s.Formation.Bullets.Live())
	}
	if s.Player.Lives() != 4 {
		t.Error("player hit through the shield")
	}
}

func TestBonusRollComesLast(t *testing.T) {
	s, rnd, _ := newTestSession()
	for range config.FormationCols * config.FormationRows {
		rnd.rolls = append(rnd.rolls, 0.99)
	}
	rnd.rolls = append(rnd.rolls, 0.001)

	s.Update()
	if s.Bonus.IsDead() {
		t.Fatal("bonus target did not spawn")
	}
	if s.Formation.Bullets.Live() != 0 {
		t.Error("an enemy fired on a high roll")
	}

	// A spawned bonus target starts moving on the next frame.
	if s.Bonus.Pos.X != config.ScreenWidth+config.BonusWidth/2.0 {
		t.Errorf("bonus at x=%v", s.Bonus.Pos.X)
	}
	s.Update()
	if s.Bonus.Pos.X != config.ScreenWidth+config.BonusWidth/2.0+config.BonusSpeed {
		t.Errorf("bonus at x=%v after a frame", s.Bonus.Pos.X)
	}
}

func TestEnemyContactCostsLife(t *testing.T) {
	s, _, _ := newTestSession()
	e := s.Enemies[len(s.Enemies)-1]
	s.Player.Pos = e.Center()

	s.Update()
	if s.Player.Lives() != 3 || !e.Exploding() || s.Score() != 0 {
		t.Errorf("lives %d exploding %v score %d", s.Player.Lives(), e.Exploding(), s.Score())
	}
}

func TestDrawOrder(t *testing.T) {
	s, _, _ := newTestSession()
	s.Formation.Bullets.Fire(nil, physics.Point{X: 100, Y: 500})
	s.Bonus.MaybeSpawn(&scriptRand{rolls: []float64{0}})

	var r render.Recorder
	s.Draw(&r)

	if r.Calls[0].Kind != render.CallClear {
		t.Fatal("frame does not start with a clear")
	}
	if got := r.Texts(); !slices.Equal(got, []string{"Level: 1", "Score: 0", "Lives: 4"}) {
		t.Errorf("texts %v", got)
	}
	if c := r.Calls[1]; c.Align != render.AlignRight || c.X != 840 || c.Y != 10 {
		t.Errorf("level text %+v", c)
	}
	if c := r.Calls[2]; c.Align != render.AlignCenter || c.X != 425 {
		t.Errorf("score text %+v", c)
	}

	imgs := r.Images()
	want := []string{asset.ImagePlayer}
	for _, e := range s.Enemies {
		want = append(want, asset.InvaderImage(int(e.Tier), 0))
	}
	for range config.ShieldCount {
		for row := range config.ShieldRows {
			for col := range config.ShieldCols {
				want = append(want, asset.ShieldCellImage(0, col, row))
			}
		}
	}
	want = append(want, asset.ImageEnemyBullet, asset.ImageBonus)
	if !slices.Equal(imgs, want) {
		t.Errorf("images\n got %v\nwant %v", imgs, want)
	}

	s.EndGame()
	s.Draw(&r)
	if texts := r.Texts(); texts[len(texts)-1] != "GAME OVER" {
		t.Errorf("overlay %v", texts)
	}
}

func TestGameStateString(t *testing.T) {
	for st, want := range map[GameState]string{
		GameStateRunning: "running",
		GameStatePaused:  "paused",
		GameStateOver:    "game over",
		GameState(9):     "unknown",
	} {
		if st.String() != want {
			t.Errorf("%d.String() = %q", st, st.String())
		}
	}
}
