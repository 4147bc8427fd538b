package draw

import (
	"strings"
	"testing"
)

type countingWriter struct {
	writes int
	total  int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	w.total += len(p)
	return len(p), nil
}

func TestChunkWriterFlushSplitsFrames(t *testing.T) {
	sink := &countingWriter{}
	cw := NewChunkWriter(sink)

	if _, err := cw.WriteString(strings.Repeat("x", 3000)); err != nil {
		t.Fatal(err)
	}
	if cw.Len() != 3000 {
		t.Fatalf("Len = %d, want 3000", cw.Len())
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if sink.writes != 3 || sink.total != 3000 {
		t.Errorf("writes = %d total = %d, want 3 writes of 3000 bytes", sink.writes, sink.total)
	}
	if cw.Len() != 0 {
		t.Errorf("buffer not reset after Flush")
	}
}

func TestFitAspect(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"height bound", 200, 60, 102, 60, 49, 0},
		{"width bound", 80, 100, 80, 47, 0, 26},
		{"capped at max resolution", 400, 200, 170, 100, 115, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitAspect(tt.termW, tt.termH, 850, 1000)
			if w != tt.wantW || h != tt.wantH || oc != tt.wantOffCol || or != tt.wantOffRow {
				t.Errorf("FitAspect(%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.termW, tt.termH, w, h, oc, or, tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}
