package common

import (
	"testing"

	"github.com/chewxy/math32"
)

func testFrustum() Frustum {
	var view, proj, vp [16]float32
	LookAt(view[:], [3]float32{0, 0, 25}, [3]float32{}, [3]float32{0, 1, 0})
	Perspective(proj[:], 75*math32.Pi/180, 16.0/9.0, 0.1, 1000)
	Mul4(vp[:], proj[:], view[:])
	return ExtractFrustumFromMatrix(vp[:])
}

func TestFrustumContainsSphere(t *testing.T) {
	f := testFrustum()
	cases := []struct {
		name   string
		center [3]float32
		radius float32
		want   bool
	}{
		{"origin", [3]float32{0, 0, 0}, 1, true},
		{"behind camera", [3]float32{0, 0, 40}, 1, false},
		{"beyond far plane", [3]float32{0, 0, -2000}, 1, false},
		{"far left", [3]float32{-500, 0, 0}, 1, false},
		{"straddling left edge", [3]float32{-33, 0, 0}, 5, true},
	}
	for _, c := range cases {
		if got := f.ContainsSphere(c.center, c.radius); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f.Planes {
		n := p.Normal
		l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if math32.Abs(l-1) > 1e-4 {
			t.Errorf("plane %d: normal length got %v, want 1", i, l)
		}
	}
}
