package object

import (
	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/render"
)

// Cell is one destructible block of a shield.
type Cell struct {
	hits   int
	dead   bool
	stages [config.CellMaxHits]*asset.Image
}

// Hits returns how many projectiles the cell has absorbed.
func (c *Cell) Hits() int {
	return c.hits
}

// IsDead reports whether the cell is destroyed.
func (c *Cell) IsDead() bool {
	return c.dead
}

func (c *Cell) hit() {
	c.hits++
	if c.hits >= config.CellMaxHits {
		c.dead = true
	}
}

func (c *Cell) reset() {
	c.hits = 0
	c.dead = false
}

// Shield is a grid of cells sitting between the player and the formation.
// The grid hangs below the shield's center line.
type Shield struct {
	Pos   physics.Point
	cells [config.ShieldRows][config.ShieldCols]Cell
}

var _ Target = (*Shield)(nil)

// NewShield creates an intact shield centered on pos.
func NewShield(pos physics.Point, lib asset.Loader) *Shield {
	s := &Shield{Pos: pos}
	for row := range s.cells {
		for col := range s.cells[row] {
			for stage := range config.CellMaxHits {
				s.cells[row][col].stages[stage] = lib.LoadImage(asset.ShieldCellImage(stage, col, row))
			}
		}
	}
	return s
}

// ShieldPos returns the center of shield i.
func ShieldPos(i int) physics.Point {
	return physics.Point{X: float64(config.ShieldSpacing * (2*i + 1)), Y: config.ShieldY}
}

// Cell returns the cell at row, col.
func (s *Shield) Cell(row, col int) *Cell {
	return &s.cells[row][col]
}

// CellRect returns the rectangle of the cell at row, col.
func (s *Shield) CellRect(row, col int) physics.Rect {
	x := s.Pos.X - config.ShieldWidth/2.0 + float64(col*config.ShieldCellW)
	y := s.Pos.Y + config.ShieldHeight/2.0 + float64(row*config.ShieldCellH)
	return physics.RectAt(x, y, config.ShieldCellW, config.ShieldCellH)
}

// LiveCells returns the number of cells still standing.
func (s *Shield) LiveCells() int {
	n := 0
	for row := range s.cells {
		for col := range s.cells[row] {
			if !s.cells[row][col].dead {
				n++
			}
		}
	}
	return n
}

// CheckHit lets the first live cell b overlaps, in row-major order, absorb it.
func (s *Shield) CheckHit(_ World, b *Projectile) {
	if b.IsDead() {
		return
	}
	r := b.Rect()
	for row := range s.cells {
		for col := range s.cells[row] {
			c := &s.cells[row][col]
			if c.dead || !physics.Overlaps(r, s.CellRect(row, col)) {
				continue
			}
			c.hit()
			b.Kill()
			return
		}
	}
}

// Reset restores every cell.
func (s *Shield) Reset() {
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col].reset()
		}
	}
}

// Draw renders the live cells in their current damage stage.
func (s *Shield) Draw(r render.Renderer) {
	for row := range s.cells {
		for col := range s.cells[row] {
			c := &s.cells[row][col]
			if c.dead {
				continue
			}
			rect := s.CellRect(row, col)
			r.DrawImage(rect.X1, rect.Y1, c.stages[c.hits])
		}
	}
}
