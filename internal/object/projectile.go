package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Side tells who fired a projectile.
type Side int

const (
	SideEnemy Side = iota
	SidePlayer
)

type sideStats struct {
	w, h  float64
	dy    float64 // vertical speed per tick, signed
	image string
}

var sides = [...]sideStats{
	SideEnemy:  {w: config.EnemyBulletWidth, h: config.EnemyBulletHeight, dy: config.EnemyBulletSpeed, image: asset.ImageEnemyBullet},
	SidePlayer: {w: config.PlayerBulletWidth, h: config.PlayerBulletHeight, dy: -config.PlayerBulletSpeed, image: asset.ImagePlayerBullet},
}

// expired reports whether a projectile of this side at y has left the playfield.
func (s Side) expired(y float64) bool {
	if s == SidePlayer {
		return y < config.PlayerBulletTopY
	}
	return y >= config.ScreenHeight
}

// Projectile is a shot moving straight up or down.
type Projectile struct {
	Body
	Side  Side
	Owner Object // who fired it; used for attribution only
}

// NewProjectile creates a projectile of side centered on pos.
func NewProjectile(side Side, owner Object, pos physics.Point) *Projectile {
	st := sides[side]
	return &Projectile{
		Body:  Body{Pos: pos, W: st.w, H: st.h},
		Side:  side,
		Owner: owner,
	}
}

// Move advances the projectile one tick and kills it once it leaves the playfield.
func (p *Projectile) Move() {
	p.Pos.Y += sides[p.Side].dy
	if p.Side.expired(p.Pos.Y) {
		p.dead = true
	}
}
