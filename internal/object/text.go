package object

import "github.com/tomz197/invaders/internal/render"

// Text is a HUD label anchored at a logical playfield position.
type Text struct {
	X, Y  float64
	Value string
	Align render.Align
}

// Draw renders the label. Empty labels draw nothing.
func (t Text) Draw(r render.Renderer) {
	if t.Value == "" {
		return
	}
	r.DrawText(t.X, t.Y, t.Value, t.Align)
}
