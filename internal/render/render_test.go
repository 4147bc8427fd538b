package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/draw"
)

var fullScreen = &asset.Image{Path: "full", W: 850, H: 1000, Rows: []string{"#"}, Color: draw.ColorGreen}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Clear()
	r.DrawImage(1, 2, fullScreen)
	r.DrawText(3, 4, "Score: 0", AlignCenter)

	if len(r.Calls) != 3 || r.Calls[0].Kind != CallClear {
		t.Fatalf("Calls = %+v", r.Calls)
	}
	if got := r.Images(); len(got) != 1 || got[0] != "full" {
		t.Errorf("Images = %v", got)
	}
	if got := r.Texts(); len(got) != 1 || got[0] != "Score: 0" {
		t.Errorf("Texts = %v", got)
	}

	r.Clear()
	if len(r.Calls) != 1 {
		t.Errorf("Clear kept %d calls, want 1", len(r.Calls))
	}
}

func TestScreenPresent(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(170, 100)

	r := NewScreen(s)
	r.Clear()
	r.DrawImage(0, 0, fullScreen)
	r.DrawText(425, 500, "PAUSED", AlignCenter)
	r.DrawText(840, 10, "Level: 1", AlignRight)
	r.Present()

	if ch, _, _, _ := s.GetContent(0, 0); ch != draw.BlockFull {
		t.Errorf("cell (0,0) = %q, want full block", ch)
	}
	// x 425 -> column 85, minus half of "PAUSED"; y 500 -> row 50.
	for i, want := range "PAUSED" {
		if ch, _, _, _ := s.GetContent(82+i, 50); ch != want {
			t.Errorf("cell (%d,50) = %q, want %q", 82+i, ch, want)
		}
	}
	// x 840 -> column 168, right aligned text ends just before it.
	if ch, _, _, _ := s.GetContent(167, 1); ch != '1' {
		t.Errorf("right aligned text ends with %q, want '1'", ch)
	}
}

func TestScreenFollowsResize(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(170, 100)

	r := NewScreen(s)
	s.SetSize(85, 50)
	r.Clear()

	if w, h := r.Canvas().TerminalWidth(), r.Canvas().TerminalHeight(); w != 85 || h != 50 {
		t.Errorf("canvas = %dx%d after resize, want 85x50", w, h)
	}
}

func TestANSIPresent(t *testing.T) {
	var out bytes.Buffer
	size := [2]int{170, 100}
	a := NewANSI(&out, func() (int, int, error) { return size[0], size[1], nil })

	a.Clear()
	a.DrawText(425, 500, "PAUSED", AlignCenter)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "PAUSED") {
		t.Fatal("frame does not contain the text")
	}

	out.Reset()
	a.Clear()
	a.DrawText(425, 500, "PAUSED", AlignCenter)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("identical frame wrote %d bytes", out.Len())
	}

	size = [2]int{200, 110}
	out.Reset()
	a.Clear()
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[H\033[2J") {
		t.Error("resize did not clear the terminal")
	}
	if !strings.Contains(out.String(), "┌") {
		t.Error("resize did not redraw the border")
	}
}
