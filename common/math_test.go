package common

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i + 1)
	}
	Mul4(out[:], id[:], m[:])
	if out != m {
		t.Fatalf("Mul4(I, m)\nhave %v\nwant %v", out, m)
	}
	Mul4(out[:], m[:], id[:])
	if out != m {
		t.Fatalf("Mul4(m, I)\nhave %v\nwant %v", out, m)
	}
}

func TestBuildModelMatrixForwardAxis(t *testing.T) {
	var m [16]float32
	rx, ry := float32(0.3), float32(1.1)
	BuildModelMatrix(m[:], [3]float32{1, 2, 3}, [3]float32{rx, ry, 0}, [3]float32{1, 1, 1})

	want := [3]float32{math32.Sin(ry) * math32.Cos(rx), -math32.Sin(rx), math32.Cos(ry) * math32.Cos(rx)}
	have := [3]float32{m[8], m[9], m[10]}
	for i := range want {
		if !approx(have[i], want[i]) {
			t.Fatalf("+Z column\nhave %v\nwant %v", have, want)
		}
	}
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Fatalf("translation\nhave %v\nwant [1 2 3]", m[12:15])
	}
}

func TestInvert4RoundTrip(t *testing.T) {
	var m, inv, out, id [16]float32
	BuildModelMatrix(m[:], [3]float32{4, -2, 9}, [3]float32{0.4, -0.7, 0.2}, [3]float32{2, 0.5, 1.5})
	if !Invert4(inv[:], m[:]) {
		t.Fatal("Invert4: unexpected singular matrix")
	}
	Mul4(out[:], m[:], inv[:])
	Identity(id[:])
	for i := range out {
		if !approx(out[i], id[i]) {
			t.Fatalf("m * inv(m)\nhave %v\nwant %v", out, id)
		}
	}
}

func TestInvert4Singular(t *testing.T) {
	var m, out [16]float32
	BuildModelMatrix(m[:], [3]float32{1, 1, 1}, [3]float32{}, [3]float32{0, 0, 0})
	out[0] = 42
	if Invert4(out[:], m[:]) {
		t.Fatal("Invert4: zero-scale matrix reported invertible")
	}
	if out[0] != 42 {
		t.Fatalf("Invert4 wrote output for a singular matrix: %v", out)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	var view [16]float32
	eye := [3]float32{0, 0, 25}
	LookAt(view[:], eye, [3]float32{}, [3]float32{0, 1, 0})

	p := TransformPoint(view[:], eye[0], eye[1], eye[2])
	for i := range p {
		if !approx(p[i], 0) {
			t.Fatalf("eye in view space\nhave %v\nwant [0 0 0]", p)
		}
	}
	o := TransformPoint(view[:], 0, 0, 0)
	if !approx(o[2], -25) {
		t.Fatalf("target depth\nhave %v\nwant -25", o[2])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], math32.Pi/2, 1, 0.1, 100)

	near := TransformPoint(proj[:], 0, 0, -0.1)
	far := TransformPoint(proj[:], 0, 0, -100)
	if !approx(near[2], 0) {
		t.Errorf("near depth: got %v, want 0", near[2])
	}
	if !approx(far[2], 1) {
		t.Errorf("far depth: got %v, want 1", far[2])
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float32 }{
		{-3, -1}, {-1, -1}, {0.25, 0.25}, {1, 1}, {7, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.v, -1, 1); got != c.want {
			t.Errorf("Clamp(%v): got %v, want %v", c.v, got, c.want)
		}
	}
}
