package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Pool holds the live projectiles of one side in fixed slots.
// A nil slot is free; a slot is freed on the first update that sees its projectile dead.
type Pool struct {
	side  Side
	slots [config.PoolSize]*Projectile
	img   *asset.Image
}

var (
	_ Object = (*Pool)(nil)
	_ Target = (*Pool)(nil)
)

// NewPool creates an empty pool for side.
func NewPool(side Side, lib asset.Loader) *Pool {
	return &Pool{side: side, img: lib.LoadImage(sides[side].image)}
}

// Side returns the side the pool fires for.
func (p *Pool) Side() Side {
	return p.side
}

// Fire puts a new projectile at origin into the first free slot.
// It returns false and drops the shot when every slot is taken.
func (p *Pool) Fire(owner Object, origin physics.Point) bool {
	for i, b := range p.slots {
		if b != nil {
			continue
		}
		p.slots[i] = NewProjectile(p.side, owner, origin)
		return true
	}
	return false
}

// Update moves every projectile, then checks it against ctx.Targets in order
// until it dies. Dead projectiles free their slots.
func (p *Pool) Update(ctx UpdateContext) {
	for i, b := range p.slots {
		if b == nil {
			continue
		}
		b.Move()
		for _, t := range ctx.Targets {
			if b.IsDead() {
				break
			}
			t.CheckHit(ctx.World, b)
		}
		if b.IsDead() {
			p.slots[i] = nil
		}
	}
}

// CheckHit lets the pool act as a target: b and the first projectile it
// overlaps, by slot index, both die.
func (p *Pool) CheckHit(_ World, b *Projectile) {
	if b.IsDead() {
		return
	}
	for i, other := range p.slots {
		if other == nil || other == b {
			continue
		}
		if physics.Overlaps(other.Rect(), b.Rect()) {
			other.Kill()
			p.slots[i] = nil
			b.Kill()
			return
		}
	}
}

// Live returns the number of occupied slots.
func (p *Pool) Live() int {
	n := 0
	for _, b := range p.slots {
		if b != nil {
			n++
		}
	}
	return n
}

// Projectiles returns the occupied slots in index order.
func (p *Pool) Projectiles() []*Projectile {
	var out []*Projectile
	for _, b := range p.slots {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Clear frees every slot.
func (p *Pool) Clear() {
	p.slots = [config.PoolSize]*Projectile{}
}

// Draw renders the live projectiles.
func (p *Pool) Draw(r render.Renderer) {
	for _, b := range p.slots {
		if b != nil {
			b.draw(r, p.img)
		}
	}
}
