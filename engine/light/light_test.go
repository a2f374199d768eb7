package light

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestHexToRGB(t *testing.T) {
	got := HexToRGB(0xffd700)
	want := [3]float32{1, 215.0 / 255, 0}
	if got != want {
		t.Fatalf("HexToRGB(0xffd700)\nhave %v\nwant %v", got, want)
	}
}

func TestDirectionalLightPointsAtOrigin(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithPosition(10, 10, 5))
	d := l.Direction()
	p := l.Position()
	dot := d[0]*p[0] + d[1]*p[1] + d[2]*p[2]
	length := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	if math32.Abs(dot+length) > 1e-4 {
		t.Fatalf("direction %v does not point from %v to the origin", d, p)
	}
}

func TestPointLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint, WithIntensity(0), WithRange(100))
	if l.Intensity() != 0 || l.Range() != 100 || !l.Enabled() {
		t.Fatalf("unexpected point light state: intensity %v range %v enabled %v",
			l.Intensity(), l.Range(), l.Enabled())
	}
	if l.Type().String() != "point" {
		t.Errorf("Type: got %q, want %q", l.Type().String(), "point")
	}
}
