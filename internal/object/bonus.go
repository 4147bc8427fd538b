package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Bonus is the target that crosses the top of the screen from right to left.
type Bonus struct {
	Body
	explosion Explosion
	img       *asset.Image
	dieSound  *asset.Sound
}

var (
	_ Object = (*Bonus)(nil)
	_ Target = (*Bonus)(nil)
	_ Entity = (*Bonus)(nil)
)

// NewBonus creates a dead bonus target waiting off the right edge.
func NewBonus(lib asset.Loader) *Bonus {
	b := &Bonus{
		Body:      Body{W: config.BonusWidth, H: config.BonusHeight},
		explosion: newExplosion(lib),
		img:       lib.LoadImage(asset.ImageBonus),
		dieSound:  lib.LoadSound(asset.SoundInvaderKilled),
	}
	b.Reset()
	return b
}

// BonusScore maps a roll in [0,1) to the bonus points:
// half of the hits are worth 100, then 200, 300 and rarely 400.
func BonusScore(r float64) int {
	switch {
	case r < 0.50:
		return 100
	case r < 0.80:
		return 200
	case r < 0.95:
		return 300
	default:
		return 400
	}
}

// Exploding reports whether the bonus target is playing its explosion.
func (b *Bonus) Exploding() bool {
	return b.explosion.Active()
}

// Update moves a live bonus target left, exploding or not, until it leaves the screen.
func (b *Bonus) Update(_ UpdateContext) {
	if b.dead {
		return
	}
	if b.explosion.Step() {
		b.dead = true
	}
	b.Pos.X += config.BonusSpeed
	if b.Pos.X < 0 {
		b.dead = true
	}
}

// MaybeSpawn brings a dead bonus target back at the right edge with the
// per-tick spawn chance. It reports whether it spawned.
func (b *Bonus) MaybeSpawn(rnd Rand) bool {
	if !b.dead || rnd.Float64() >= config.BonusSpawnChance {
		return false
	}
	b.Reset()
	b.dead = false
	return true
}

// CheckHit explodes the bonus target when p overlaps it and scores a random tier.
func (b *Bonus) CheckHit(w World, p *Projectile) {
	if p.IsDead() || b.dead || b.explosion.Active() {
		return
	}
	if !physics.Overlaps(p.Rect(), b.Rect()) {
		return
	}
	b.explosion.Start()
	w.AddScore(BonusScore(w.Float64()))
	w.PlaySound(b.dieSound)
	p.Kill()
}

// Reset puts the bonus target back off the right edge, dead.
func (b *Bonus) Reset() {
	b.dead = true
	b.explosion.Reset()
	b.Pos = physics.Point{X: config.ScreenWidth + b.W/2, Y: config.BonusY}
}

// Draw renders the bonus target, or its explosion while it plays.
func (b *Bonus) Draw(r render.Renderer) {
	if b.explosion.Active() {
		b.explosion.draw(r, b.Pos)
		return
	}
	if !b.dead {
		b.draw(r, b.img)
	}
}
