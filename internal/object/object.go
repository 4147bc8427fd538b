package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Rand is the source of every random roll in the simulation.
type Rand interface {
	Float64() float64
}

// World is the session as seen by the entities: random rolls, the score,
// sounds and the end of the game.
type World interface {
	Rand
	AddScore(points int)
	PlaySound(snd *asset.Sound)
	EndGame()
}

// Target is anything a moving projectile can hit.
type Target interface {
	// CheckHit tests b against the target. On a hit the target reacts and kills b.
	CheckHit(w World, b *Projectile)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	World World
	// Targets are checked in order against every moving projectile,
	// stopping once the projectile is dead.
	Targets []Target
}

// Object is a drawable and updatable game entity.
type Object interface {
	Update(ctx UpdateContext)
	Draw(r render.Renderer)
}

// Entity is the collision view shared by every entity.
type Entity interface {
	Rect() physics.Rect
	IsDead() bool
}

// Body is a centered box: the position and liveness every entity starts from.
type Body struct {
	Pos  physics.Point
	W, H float64
	dead bool
}

// Rect returns the bounding rectangle centered on Pos.
func (b *Body) Rect() physics.Rect {
	return physics.RectAround(b.Pos, b.W, b.H)
}

// IsDead reports whether the body is dead.
func (b *Body) IsDead() bool {
	return b.dead
}

// Kill marks the body dead.
func (b *Body) Kill() {
	b.dead = true
}

// draw blits img with its top-left corner at the body's top-left corner.
func (b *Body) draw(r render.Renderer, img *asset.Image) {
	r.DrawImage(b.Pos.X-b.W/2, b.Pos.Y-b.H/2, img)
}
