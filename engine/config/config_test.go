package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/chewxy/math32"
)

func writeOverride(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNames(t *testing.T) {
	got := Names()
	if len(got) != 2 || got[0] != "classic" || got[1] != "reveal" {
		t.Fatalf("Names: got %v, want [classic reveal]", got)
	}
}

func TestLoadClassic(t *testing.T) {
	v, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v.Name != "classic" {
		t.Errorf("name: got %q, want classic", v.Name)
	}
	if v.Camera.Position != [3]float32{0, 0, 25} || v.Camera.Fov != 75 {
		t.Errorf("camera: got %+v", v.Camera)
	}
	if v.Orbit.Radius != 8 || v.Orbit.Speed != 0.005 {
		t.Errorf("orbit: got %+v", v.Orbit)
	}
	if v.Highlight.AccentColor != 0xffd700 || v.Highlight.AccentIntensity != 3 {
		t.Errorf("highlight: got %+v", v.Highlight)
	}
	if v.Entrance.Enabled {
		t.Error("classic should not run an entrance")
	}
	if len(v.Satellites) != 2 || v.Satellites[0].Role != game_object.RoleOrbitTextA || v.Satellites[1].Role != game_object.RoleOrbitTextB {
		t.Fatalf("satellites: got %+v", v.Satellites)
	}
	if !strings.HasPrefix(v.Satellites[0].Text, "Vision:\n") {
		t.Errorf("satellite A text: got %q", v.Satellites[0].Text)
	}
	if v.Decor.Starfield.Count != 15000 {
		t.Errorf("star count: got %d, want 15000", v.Decor.Starfield.Count)
	}
}

func TestLoadReveal(t *testing.T) {
	v, err := Load("reveal", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Entrance{Enabled: true, Delay: 4 * time.Second, Stagger: 300 * time.Millisecond, Duration: 1500 * time.Millisecond}
	if v.Entrance != want {
		t.Errorf("entrance\nhave %+v\nwant %+v", v.Entrance, want)
	}
	if len(v.Bursts) != 3 || v.Bursts[0].At != 2500*time.Millisecond || v.Bursts[2].At != 4500*time.Millisecond {
		t.Errorf("bursts: got %+v", v.Bursts)
	}
	if v.Highlight.CenterpieceHoverScale != 1.05 || v.Highlight.SatelliteHoverScale != 1.02 {
		t.Errorf("hover scales: got %+v", v.Highlight)
	}
	if v.Satellites[1].Bob != (Wave{Amplitude: 0.3, Frequency: 1.3}) {
		t.Errorf("satellite B bob: got %+v", v.Satellites[1].Bob)
	}
	if v.Decor.Starfield.Spin != 0.02 {
		t.Errorf("star spin: got %v, want 0.02", v.Decor.Starfield.Spin)
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	if _, err := Load("neon", ""); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestOverrideKeepsUnspecifiedKeys(t *testing.T) {
	path := writeOverride(t, "orbit:\n  radius: 10\nhighlight:\n  accentintensity: 4\n")
	v, err := Load("classic", path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v.Orbit.Radius != 10 {
		t.Errorf("radius: got %v, want 10", v.Orbit.Radius)
	}
	if v.Orbit.Speed != 0.005 {
		t.Errorf("speed: got %v, want 0.005", v.Orbit.Speed)
	}
	if v.Highlight.AccentIntensity != 4 || v.Highlight.BoostSpeed != 0.1 {
		t.Errorf("highlight: got %+v", v.Highlight)
	}
}

func TestOverrideDoesNotLeakIntoDefaults(t *testing.T) {
	path := writeOverride(t, "satellites:\n  - text: only\n    ybase: 1\n")
	if _, err := Load("classic", path); err != nil {
		t.Fatalf("Load with override: %v", err)
	}
	v, err := Load("classic", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(v.Satellites) != 2 || v.Satellites[0].Text == "only" {
		t.Fatalf("defaults were modified: %+v", v.Satellites)
	}
}

func TestOverrideMergesSatellitesByIndex(t *testing.T) {
	base, err := Load("classic", "")
	if err != nil {
		t.Fatal(err)
	}
	v, err := Load("classic", writeOverride(t, "satellites:\n  - ybase: 1\n    bob: {amplitude: 0.5}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(v.Satellites) != 2 {
		t.Fatalf("satellites: got %d, want 2", len(v.Satellites))
	}
	a := v.Satellites[0]
	if a.Role != game_object.RoleOrbitTextA || a.Text != base.Satellites[0].Text || a.Phase != base.Satellites[0].Phase {
		t.Errorf("satellite A lost unspecified keys: %+v", a)
	}
	if a.YBase != 1 || a.Bob.Amplitude != 0.5 || a.Bob.Frequency != base.Satellites[0].Bob.Frequency {
		t.Errorf("satellite A: got %+v", a)
	}
	if v.Satellites[1] != base.Satellites[1] {
		t.Errorf("satellite B: got %+v, want %+v", v.Satellites[1], base.Satellites[1])
	}
}

func TestOverrideErrors(t *testing.T) {
	if _, err := Load("classic", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing override")
	}
	if _, err := Load("classic", writeOverride(t, "orbit: [1, 2\n")); err == nil {
		t.Error("expected error for malformed override")
	}
	if _, err := Load("classic", writeOverride(t, "satellites:\n  - role: sparkle\n")); err == nil {
		t.Error("expected error for unknown role")
	}
	if _, err := Load("classic", writeOverride(t, "satellites: 3\n")); err == nil {
		t.Error("expected error for non-list satellites")
	}
	if _, err := Load("classic", writeOverride(t, "satellites:\n  - {}\n  - {}\n  - role: orbit-text-A\n    phase: 1\n")); err == nil {
		t.Error("expected error for a third satellite")
	}
	if _, err := Load("classic", writeOverride(t, "satellites:\n  - {}\n  - role: orbit-text-A\n")); err == nil {
		t.Error("expected error for duplicate satellite roles")
	}
}

func TestValidate(t *testing.T) {
	base, err := Load("reveal", "")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		mutate func(v *Variant)
	}{
		{"zero radius", func(v *Variant) { v.Orbit.Radius = 0 }},
		{"zero entrance duration", func(v *Variant) { v.Entrance.Duration = 0 }},
		{"zero damping", func(v *Variant) { v.Highlight.Damping = 0 }},
		{"damping above one", func(v *Variant) { v.Highlight.Damping = 1.5 }},
		{"overlapping layout thresholds", func(v *Variant) { v.Layout.PortraitBelow = 3 }},
		{"inverted clip range", func(v *Variant) { v.Camera.Far = 0.01 }},
		{"centerpiece as satellite", func(v *Variant) { v.Satellites[0].Role = game_object.RoleCenterpiece }},
		{"one satellite", func(v *Variant) { v.Satellites = v.Satellites[:1] }},
		{"duplicate satellite roles", func(v *Variant) { v.Satellites[1].Role = v.Satellites[0].Role }},
		{"satellites not opposed", func(v *Variant) { v.Satellites[1].Phase = v.Satellites[0].Phase + 1 }},
	}
	for _, c := range cases {
		v := base
		v.Satellites = append([]Satellite(nil), base.Satellites...)
		c.mutate(&v)
		if err := v.Validate(); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}

	wrapped := base
	wrapped.Satellites = append([]Satellite(nil), base.Satellites...)
	wrapped.Satellites[0].Phase = 3 * math32.Pi
	wrapped.Satellites[1].Phase = 0
	if err := wrapped.Validate(); err != nil {
		t.Errorf("phases separated by pi modulo 2pi: %v", err)
	}

	disabled := base
	disabled.Entrance = Entrance{}
	if err := disabled.Validate(); err != nil {
		t.Errorf("disabled entrance with zero duration: %v", err)
	}
}
