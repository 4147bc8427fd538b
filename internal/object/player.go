package object

import (
	"strconv"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Player is the ship at the bottom of the screen.
type Player struct {
	Body
	Bullets *Pool

	lives    int
	dx       float64
	cooldown int // ticks until the next shot is allowed

	img       *asset.Image
	fireSound *asset.Sound
	dieSound  *asset.Sound
}

var (
	_ Object = (*Player)(nil)
	_ Target = (*Player)(nil)
	_ Entity = (*Player)(nil)
)

// NewPlayer creates a ship at its starting position with full lives.
func NewPlayer(lib asset.Loader) *Player {
	p := &Player{
		Body:      Body{W: config.PlayerWidth, H: config.PlayerHeight},
		Bullets:   NewPool(SidePlayer, lib),
		img:       lib.LoadImage(asset.ImagePlayer),
		fireSound: lib.LoadSound(asset.SoundShoot),
		dieSound:  lib.LoadSound(asset.SoundExplosion),
	}
	p.Reset()
	return p
}

// Lives returns the remaining lives.
func (p *Player) Lives() int {
	return p.lives
}

// DX returns the horizontal velocity.
func (p *Player) DX() float64 {
	return p.dx
}

// Cooldown returns the ticks until the next shot is allowed.
func (p *Player) Cooldown() int {
	return p.cooldown
}

// MoveLeft starts moving left.
func (p *Player) MoveLeft() {
	p.dx = -config.PlayerSpeed
}

// MoveRight starts moving right.
func (p *Player) MoveRight() {
	p.dx = config.PlayerSpeed
}

// Stop halts horizontal movement.
func (p *Player) Stop() {
	p.dx = 0
}

// Fire shoots from the ship's nose when the cooldown allows and a slot is free.
func (p *Player) Fire(w World) bool {
	if p.cooldown > 0 {
		return false
	}
	if !p.Bullets.Fire(p, p.Pos.Add(0, -p.H/2)) {
		return false
	}
	p.cooldown = config.FireCooldownTicks
	w.PlaySound(p.fireSound)
	return true
}

// Update moves the ship, cools the gun down and advances the player's
// projectiles against ctx.Targets.
func (p *Player) Update(ctx UpdateContext) {
	if p.dead {
		return
	}
	p.Pos.X = physics.Clamp(p.Pos.X+p.dx, p.W/2, config.ScreenWidth-p.W/2-1)
	if p.cooldown > 0 {
		p.cooldown--
	}
	p.Bullets.Update(ctx)
}

// CheckHit costs a life when b overlaps the ship.
func (p *Player) CheckHit(w World, b *Projectile) {
	if b.IsDead() || p.out() {
		return
	}
	if !physics.Overlaps(b.Rect(), p.Rect()) {
		return
	}
	b.Kill()
	p.loseLife(w)
}

// Collide costs a life when the body of e overlaps the ship; e explodes
// without scoring. It reports whether they collided.
func (p *Player) Collide(w World, e *Enemy) bool {
	if p.out() || !e.Hittable() {
		return false
	}
	if !physics.Overlaps(e.Rect(), p.Rect()) {
		return false
	}
	e.Explode()
	p.loseLife(w)
	return true
}

// out reports whether the ship can no longer be hit: it is gone or has no
// lives left for the rest of the game.
func (p *Player) out() bool {
	return p.dead || p.lives <= 0
}

func (p *Player) loseLife(w World) {
	if p.lives <= 0 {
		return
	}
	p.lives--
	w.PlaySound(p.dieSound)
	if p.lives <= 0 {
		w.EndGame()
	}
}

// Reset puts the ship back at its start with full lives and no shots in flight.
func (p *Player) Reset() {
	p.dead = false
	p.Pos = physics.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight - config.PlayerBottomOffset}
	p.lives = config.InitialLives
	p.dx = 0
	p.cooldown = 0
	p.Bullets.Clear()
}

// Draw renders the ship, its projectiles and the lives counter.
func (p *Player) Draw(r render.Renderer) {
	if !p.dead {
		p.draw(r, p.img)
	}
	p.Bullets.Draw(r)
	Text{X: config.HUDMargin, Y: config.HUDMargin, Value: "Lives: " + strconv.Itoa(p.lives), Align: render.AlignLeft}.Draw(r)
}
