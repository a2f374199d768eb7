package input

import "testing"

type fixedViewport struct{ w, h int }

func (v fixedViewport) Dimensions() (int, int) { return v.w, v.h }

func TestNormalize(t *testing.T) {
	cases := []struct {
		name         string
		cx, cy       float64
		wantX, wantY float32
	}{
		{"center", 400, 300, 0, 0},
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 800, 600, 1, -1},
		{"quarter", 200, 450, -0.5, -0.5},
		{"dragged off left", -120, 300, -1, 0},
		{"dragged off bottom", 400, 9000, 0, -1},
	}
	for _, c := range cases {
		x, y := Normalize(c.cx, c.cy, 800, 600)
		if x != c.wantX || y != c.wantY {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", c.name, x, y, c.wantX, c.wantY)
		}
	}
}

func TestPointerTrackerLastValueWins(t *testing.T) {
	p := NewPointerTracker(fixedViewport{800, 600})
	if x, y := p.Position(); x != 0 || y != 0 {
		t.Fatalf("initial position: got (%v, %v), want (0, 0)", x, y)
	}
	p.Move(0, 0)
	p.Move(800, 600)
	if x, y := p.Position(); x != 1 || y != -1 {
		t.Fatalf("position: got (%v, %v), want (1, -1)", x, y)
	}
}

func TestPointerTrackerDropsEventsWithoutViewport(t *testing.T) {
	p := NewPointerTracker(fixedViewport{0, 0})
	p.Move(100, 100)
	if x, y := p.Position(); x != 0 || y != 0 {
		t.Fatalf("position: got (%v, %v), want (0, 0)", x, y)
	}
}
