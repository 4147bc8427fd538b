package render

import "github.com/tomz197/invaders/internal/asset"

// CallKind tells which Renderer method a recorded Call was.
type CallKind int

const (
	CallClear CallKind = iota
	CallImage
	CallText
)

// Call is one recorded draw call.
type Call struct {
	Kind  CallKind
	X, Y  float64
	Image *asset.Image
	Text  string
	Align Align
}

// Recorder is a Renderer that keeps the calls of the current frame.
type Recorder struct {
	Calls []Call
}

var _ Renderer = (*Recorder)(nil)

// Clear drops the previous frame and records the clear.
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls[:0], Call{Kind: CallClear})
}

// DrawImage records an image draw.
func (r *Recorder) DrawImage(x, y float64, img *asset.Image) {
	r.Calls = append(r.Calls, Call{Kind: CallImage, X: x, Y: y, Image: img})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(x, y float64, s string, align Align) {
	r.Calls = append(r.Calls, Call{Kind: CallText, X: x, Y: y, Text: s, Align: align})
}

// Texts returns the recorded texts in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Kind == CallText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Images returns the paths of the recorded images in order.
func (r *Recorder) Images() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Kind == CallImage && c.Image != nil {
			out = append(out, c.Image.Path)
		}
	}
	return out
}
