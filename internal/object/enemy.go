package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Tier is the enemy kind, 1 for the top row down to 3 for the bottom rows.
type Tier int

type tierStats struct {
	w, h  float64
	score int
}

var tiers = [...]tierStats{
	1: {w: 35, h: 35, score: 30},
	2: {w: 48, h: 35, score: 20},
	3: {w: 52, h: 35, score: 10},
}

// TierForRow returns the tier of the enemies in formation row.
func TierForRow(row int) Tier {
	switch row {
	case 0:
		return 1
	case 1, 2:
		return 2
	default:
		return 3
	}
}

// Score returns the points for destroying an enemy of this tier.
func (t Tier) Score() int {
	return tiers[t].score
}

// Enemy is one member of the formation. Its horizontal position is its own;
// its vertical position is always the formation's offset for its row.
type Enemy struct {
	Col, Row int
	Tier     Tier

	x         float64
	dead      bool
	explosion Explosion
	formation *Formation

	frames    [2]*asset.Image
	frame     int
	animTicks int
	dieSound  *asset.Sound
}

var (
	_ Object = (*Enemy)(nil)
	_ Target = (*Enemy)(nil)
	_ Entity = (*Enemy)(nil)
)

// NewEnemy creates the enemy at col, row of formation f.
func NewEnemy(col, row int, f *Formation, lib asset.Loader) *Enemy {
	tier := TierForRow(row)
	return &Enemy{
		Col:       col,
		Row:       row,
		Tier:      tier,
		x:         StartX(col),
		explosion: newExplosion(lib),
		formation: f,
		frames: [2]*asset.Image{
			lib.LoadImage(asset.InvaderImage(int(tier), 0)),
			lib.LoadImage(asset.InvaderImage(int(tier), 1)),
		},
		animTicks: config.EnemyAnimTicks,
		dieSound:  lib.LoadSound(asset.SoundInvaderKilled),
	}
}

// StartX returns the starting horizontal center of column col.
func StartX(col int) float64 {
	return float64(config.ColumnSpacing * (2*col + 1))
}

// Center returns the enemy's center point.
func (e *Enemy) Center() physics.Point {
	return physics.Point{X: e.x, Y: e.formation.RowY(e.Row)}
}

// Rect returns the bounding rectangle.
func (e *Enemy) Rect() physics.Rect {
	st := tiers[e.Tier]
	return physics.RectAround(e.Center(), st.w, st.h)
}

// IsDead reports whether the enemy is gone for the rest of the level.
func (e *Enemy) IsDead() bool {
	return e.dead
}

// Exploding reports whether the enemy is playing its explosion.
func (e *Enemy) Exploding() bool {
	return e.explosion.Active()
}

// ExplodeTicks returns the remaining explosion ticks.
func (e *Enemy) ExplodeTicks() int {
	return e.explosion.Ticks()
}

// Hittable reports whether the enemy is alive and not exploding.
func (e *Enemy) Hittable() bool {
	return !e.dead && !e.explosion.Active()
}

// Frame returns the current animation frame.
func (e *Enemy) Frame() int {
	return e.frame
}

// Update runs one tick: finish an explosion, drift, then, unless exploding,
// report edges and liveness to the formation, animate and maybe fire.
func (e *Enemy) Update(ctx UpdateContext) {
	if e.explosion.Step() {
		e.dead = true
	}
	if e.dead {
		return
	}

	f := e.formation
	e.x += f.drift()
	if e.explosion.Active() {
		return
	}

	f.reportEdge(e.x)

	e.animTicks--
	if e.animTicks <= 0 {
		e.frame ^= 1
		e.animTicks = config.EnemyAnimTicks
	}

	if ctx.World.Float64() < config.EnemyFireChance {
		f.Bullets.Fire(e, e.Center().Add(0, config.EnemyBulletOffset))
	}

	f.reportAlive()

	if f.Breached(e.Row) {
		ctx.World.EndGame()
	}
}

// CheckHit explodes the enemy when b overlaps it, scoring its tier once.
func (e *Enemy) CheckHit(w World, b *Projectile) {
	if b.IsDead() || !e.Hittable() {
		return
	}
	if !physics.Overlaps(b.Rect(), e.Rect()) {
		return
	}
	e.explosion.Start()
	w.AddScore(e.Tier.Score())
	w.PlaySound(e.dieSound)
	b.Kill()
}

// Explode starts the explosion without scoring. It reports false when the
// enemy cannot be hit.
func (e *Enemy) Explode() bool {
	if !e.Hittable() {
		return false
	}
	e.explosion.Start()
	return true
}

// Reset revives the enemy at its starting column.
func (e *Enemy) Reset() {
	e.dead = false
	e.explosion.Reset()
	e.animTicks = 0
	e.x = StartX(e.Col)
}

// Draw renders the enemy, or its explosion while it plays.
func (e *Enemy) Draw(r render.Renderer) {
	if e.dead {
		return
	}
	c := e.Center()
	if e.explosion.Active() {
		e.explosion.draw(r, c)
		return
	}
	st := tiers[e.Tier]
	r.DrawImage(c.X-st.w/2, c.Y-st.h/2, e.frames[e.frame])
}
