package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Explosion is the explode sub-state shared by enemies and the bonus target.
// While it runs the owner draws the explosion and ignores movement rules.
type Explosion struct {
	ticks int
	img   *asset.Image
}

func newExplosion(lib asset.Loader) Explosion {
	return Explosion{img: lib.LoadImage(asset.ImageExplosion)}
}

// Start begins a full-length explosion.
func (e *Explosion) Start() {
	e.ticks = config.ExplodeTicks
}

// Active reports whether the explosion is running.
func (e *Explosion) Active() bool {
	return e.ticks > 0
}

// Ticks returns the remaining explosion ticks.
func (e *Explosion) Ticks() int {
	return e.ticks
}

// Step advances a running explosion by one tick and reports whether it just ended.
func (e *Explosion) Step() (done bool) {
	if e.ticks == 0 {
		return false
	}
	e.ticks--
	return e.ticks == 0
}

// Reset stops the explosion.
func (e *Explosion) Reset() {
	e.ticks = 0
}

func (e *Explosion) draw(r render.Renderer, center physics.Point) {
	const half = config.ExplosionSize / 2
	r.DrawImage(center.X-half, center.Y-half, e.img)
}
