package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/render"
)

// Formation is the state the enemy grid shares: row offsets, drift direction
// and speed, plus the per-frame aggregate the enemies report into.
//
// A frame runs PreUpdate, then every enemy's Update, then PostUpdate.
// Row offsets only change in PostUpdate and Reset.
type Formation struct {
	rowY         [config.FormationRows]float64
	dir          float64
	speed        float64
	alive        int
	needsDescend bool

	// Bullets is the enemy projectile pool.
	Bullets *Pool
}

// NewFormation creates a formation in its starting layout.
func NewFormation(lib asset.Loader) *Formation {
	f := &Formation{Bullets: NewPool(SideEnemy, lib)}
	f.Reset()
	return f
}

// Reset restores the starting rows, direction and speed and clears the enemy pool.
func (f *Formation) Reset() {
	for row := range f.rowY {
		f.rowY[row] = float64(row*config.RowSpacing + config.RowTop)
	}
	f.dir = 1
	f.speed = config.InitialSpeed
	f.alive = 0
	f.needsDescend = false
	f.Bullets.Clear()
}

// PreUpdate clears the per-frame aggregate.
func (f *Formation) PreUpdate() {
	f.alive = 0
	f.needsDescend = false
}

// PostUpdate applies the aggregate reported by the enemies this frame.
// An edge contact drops every row by half a cell, reverses the drift and
// speeds it up. It reports cleared when no enemy was counted alive.
func (f *Formation) PostUpdate() (cleared bool) {
	if f.needsDescend {
		for row := range f.rowY {
			f.rowY[row] += config.CellWidth / 2
		}
		f.dir = -f.dir
		f.speed *= config.SpeedRamp
		f.needsDescend = false
	}
	return f.alive == 0
}

// RowY returns the vertical center of row.
func (f *Formation) RowY(row int) float64 {
	return f.rowY[row]
}

// Dir returns the drift direction, -1 or +1.
func (f *Formation) Dir() float64 {
	return f.dir
}

// Speed returns the drift speed per tick.
func (f *Formation) Speed() float64 {
	return f.speed
}

// Alive returns how many enemies counted themselves alive this frame.
func (f *Formation) Alive() int {
	return f.alive
}

// NeedsDescend reports whether an enemy touched an edge this frame.
func (f *Formation) NeedsDescend() bool {
	return f.needsDescend
}

// Breached reports whether row has crossed the breach line.
func (f *Formation) Breached(row int) bool {
	return f.rowY[row] > config.BreachY
}

// drift returns the horizontal move of one tick.
func (f *Formation) drift() float64 {
	return f.speed * f.dir
}

// reportEdge flags a descend when x is within half a cell of either side.
func (f *Formation) reportEdge(x float64) {
	const hs = config.CellWidth / 2
	if x >= config.ScreenWidth-hs || x < hs {
		f.needsDescend = true
	}
}

func (f *Formation) reportAlive() {
	f.alive++
}

// UpdateBullets moves the enemy projectiles and checks them against ctx.Targets.
func (f *Formation) UpdateBullets(ctx UpdateContext) {
	f.Bullets.Update(ctx)
}

// Draw renders the enemy projectiles.
func (f *Formation) Draw(r render.Renderer) {
	f.Bullets.Draw(r)
}
