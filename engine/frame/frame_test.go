package frame

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/camera"
	"github.com/Carmen-Shannon/oxy-marquee/engine/clock"
	"github.com/Carmen-Shannon/oxy-marquee/engine/entrance"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/Carmen-Shannon/oxy-marquee/engine/highlight"
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
	"github.com/Carmen-Shannon/oxy-marquee/engine/orbit"
	"github.com/Carmen-Shannon/oxy-marquee/engine/picking"
	"github.com/Carmen-Shannon/oxy-marquee/engine/scene"
	"github.com/chewxy/math32"
)

type fixedPointer struct {
	x, y float32
}

func (p *fixedPointer) Move(float64, float64) {}

func (p *fixedPointer) Position() (float32, float32) {
	return p.x, p.y
}

// emptyHitPicker reports a hit without an object.
type emptyHitPicker struct{}

func (emptyHitPicker) Pick(float32, float32, camera.Camera, []game_object.GameObject) (picking.Hit, bool) {
	return picking.Hit{}, true
}

var tuning = highlight.Tuning{
	DefaultSpeed:          0.02,
	BoostSpeed:            0.1,
	Damping:               0.1,
	CenterpieceRest:       0.3,
	CenterpieceBoost:      0.5,
	SatelliteBoost:        0.2,
	CenterpieceHoverScale: 1,
	SatelliteHoverScale:   1,
	AccentIntensity:       3,
	AccentOffset:          1,
}

func newCenterpiece() game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithRole(game_object.RoleCenterpiece),
		game_object.WithInteractable(true),
		game_object.WithHalfExtents(1.5, 0.5, 0.1),
	)
}

func newUpdater(s scene.Scene, clk clock.Clock, ptr *fixedPointer, options ...UpdaterBuilderOption) *Updater {
	base := []UpdaterBuilderOption{
		WithScene(s),
		WithClock(clk),
		WithPointer(ptr),
		WithHighlight(highlight.NewController(tuning)),
	}
	return NewUpdater(append(base, options...)...)
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestUpdateEmptyScene(t *testing.T) {
	s := scene.NewScene(scene.WithCamera(camera.NewCamera()))
	u := newUpdater(s, &clock.Manual{}, &fixedPointer{})

	stats := u.Update()
	if stats.Mode != highlight.ModeIdle || stats.Hover != game_object.RoleNone {
		t.Fatalf("empty scene: got mode %v hover %v", stats.Mode, stats.Hover)
	}
	if stats.Frame != 1 {
		t.Fatalf("frame: got %d, want 1", stats.Frame)
	}
}

func TestUpdateWithoutCamera(t *testing.T) {
	s := scene.NewScene(scene.WithObjects(newCenterpiece()))
	u := newUpdater(s, &clock.Manual{}, &fixedPointer{})
	if stats := u.Update(); stats.Hover != game_object.RoleNone {
		t.Fatalf("hover without camera: got %v", stats.Hover)
	}
}

func TestPostedContinuationRunsBeforePicking(t *testing.T) {
	s := scene.NewScene(scene.WithCamera(camera.NewCamera()))
	u := newUpdater(s, &clock.Manual{}, &fixedPointer{})

	center := newCenterpiece()
	if !u.Post(func() { s.Add(center) }) {
		t.Fatal("Post rejected")
	}

	stats := u.Update()
	if stats.Continuations != 1 {
		t.Fatalf("continuations: got %d, want 1", stats.Continuations)
	}
	if stats.Hover != game_object.RoleCenterpiece || stats.Mode != highlight.ModeHoverCenterpiece {
		t.Fatalf("hover: got %v mode %v", stats.Hover, stats.Mode)
	}
	if u.Highlight().Speed() != tuning.BoostSpeed {
		t.Fatalf("speed: got %v, want %v", u.Highlight().Speed(), tuning.BoostSpeed)
	}
	if center.Emphasis() != tuning.CenterpieceBoost {
		t.Fatalf("emphasis: got %v, want %v", center.Emphasis(), tuning.CenterpieceBoost)
	}
}

func TestPanickingContinuationIsRecovered(t *testing.T) {
	u := newUpdater(scene.NewScene(), &clock.Manual{}, &fixedPointer{})

	ran := false
	u.Post(func() { panic("boom") })
	u.Post(func() { ran = true })

	stats := u.Update()
	if !ran {
		t.Fatal("continuation after the panic did not run")
	}
	if stats.Continuations != 2 {
		t.Fatalf("continuations: got %d, want 2", stats.Continuations)
	}
}

func TestContinuationPostedDuringDrainWaitsForNextFrame(t *testing.T) {
	u := newUpdater(scene.NewScene(), &clock.Manual{}, &fixedPointer{})

	ran := 0
	u.Post(func() {
		u.Post(func() { ran++ })
	})

	if stats := u.Update(); stats.Continuations != 1 || ran != 0 {
		t.Fatalf("first frame: got %d continuations and %d runs, want 1 and 0", stats.Continuations, ran)
	}
	if stats := u.Update(); stats.Continuations != 1 || ran != 1 {
		t.Fatalf("second frame: got %d continuations and %d runs, want 1 and 1", stats.Continuations, ran)
	}
}

func TestPostNeverBlocks(t *testing.T) {
	u := newUpdater(scene.NewScene(), &clock.Manual{}, &fixedPointer{}, WithMailboxSize(1))
	if !u.Post(func() {}) {
		t.Fatal("first Post rejected")
	}
	if u.Post(func() {}) {
		t.Fatal("second Post should be dropped when the mailbox is full")
	}
	if u.Post(nil) {
		t.Fatal("nil continuation should be rejected")
	}
}

func TestSatellitesFollowOrbit(t *testing.T) {
	a := game_object.NewGameObject(game_object.WithRole(game_object.RoleOrbitTextA), game_object.WithInteractable(true))
	b := game_object.NewGameObject(game_object.WithRole(game_object.RoleOrbitTextB), game_object.WithInteractable(true))
	s := scene.NewScene(scene.WithObjects(a, b))
	clk := &clock.Manual{}
	clk.Set(2 * time.Second)

	oa := orbit.Orbit{Radius: 12, YBase: 3, BobAmplitude: 0.3, BobFrequency: 1.5}
	ob := orbit.Orbit{Radius: 12, Phase: math32.Pi, YBase: -3, BobAmplitude: 0.3, BobFrequency: 1.3}
	u := newUpdater(s, clk, &fixedPointer{x: 1, y: 1},
		WithOrbit(orbit.NewState(0.003)),
		WithMotion(Motion{Satellites: []Satellite{
			{Role: game_object.RoleOrbitTextA, Orbit: oa},
			{Role: game_object.RoleOrbitTextB, Orbit: ob},
		}}),
	)
	u.Update()

	for _, c := range []struct {
		obj game_object.GameObject
		o   orbit.Orbit
	}{{a, oa}, {b, ob}} {
		want := orbit.Evaluate(0.003, 2, c.o)
		x, y, z := c.obj.Position()
		if !approx(x, want.Position[0]) || !approx(y, want.Position[1]) || !approx(z, want.Position[2]) {
			t.Fatalf("%v position\nhave %v %v %v\nwant %v", c.obj.Role(), x, y, z, want.Position)
		}
		_, ry, _ := c.obj.Rotation()
		if !approx(ry, want.Rotation[1]) {
			t.Fatalf("%v yaw: got %v, want %v", c.obj.Role(), ry, want.Rotation[1])
		}
	}
}

func TestMissingSatelliteIsSkipped(t *testing.T) {
	u := newUpdater(scene.NewScene(), &clock.Manual{}, &fixedPointer{},
		WithMotion(Motion{Satellites: []Satellite{{Role: game_object.RoleOrbitTextA, Orbit: orbit.Orbit{Radius: 8}}}}),
	)
	u.Update()
}

func TestCenterpieceSpinAccumulates(t *testing.T) {
	center := newCenterpiece()
	s := scene.NewScene(scene.WithCamera(camera.NewCamera()), scene.WithObjects(center))
	clk := &clock.Manual{}
	u := newUpdater(s, clk, &fixedPointer{x: 1, y: 1},
		WithMotion(Motion{
			CenterpieceBob:   Wave{Amplitude: 0.3, Frequency: 2},
			CenterpieceTiltX: Wave{Amplitude: 0.1, Frequency: 1.5},
		}),
	)

	for i := 0; i < 3; i++ {
		clk.Advance(16 * time.Millisecond)
		u.Update()
	}
	_, ry, rz := center.Rotation()
	if !approx(ry, 0.06) {
		t.Fatalf("rotation.y: got %v, want 0.06", ry)
	}
	if rz != 0 {
		t.Fatalf("rotation.z without tilt: got %v, want 0", rz)
	}
	_, y, _ := center.Position()
	if want := 0.3 * math32.Sin(0.048*2); !approx(y, want) {
		t.Fatalf("bob: got %v, want %v", y, want)
	}
	if center.Emphasis() != tuning.CenterpieceRest {
		t.Fatalf("idle emphasis: got %v, want %v", center.Emphasis(), tuning.CenterpieceRest)
	}
}

func TestDecorFollowsClockAndPointer(t *testing.T) {
	wire := game_object.NewGameObject(game_object.WithRole(game_object.RoleWireframe))
	stars := game_object.NewGameObject(game_object.WithRole(game_object.RoleStarfield))
	s := scene.NewScene(scene.WithObjects(wire, stars))
	clk := &clock.Manual{}
	clk.Set(10 * time.Second)

	u := newUpdater(s, clk, &fixedPointer{x: 0.5, y: -0.5}, WithMotion(Motion{
		WireframeRate: [2]float32{0.04, 0.08},
		StarFollow:    3,
		StarSpin:      0.02,
	}))
	u.Update()

	if rx, ry, _ := wire.Rotation(); !approx(rx, 0.4) || !approx(ry, 0.8) {
		t.Fatalf("wireframe rotation: got %v %v, want 0.4 0.8", rx, ry)
	}
	if x, y, _ := stars.Position(); !approx(x, 1.5) || !approx(y, -1.5) {
		t.Fatalf("starfield position: got %v %v, want 1.5 -1.5", x, y)
	}
	if _, _, rz := stars.Rotation(); !approx(rz, 0.2) {
		t.Fatalf("starfield spin: got %v, want 0.2", rz)
	}
}

func TestEntranceOwnsScaleAfterHighlight(t *testing.T) {
	center := newCenterpiece()
	s := scene.NewScene(scene.WithCamera(camera.NewCamera()), scene.WithObjects(center))
	seq := entrance.NewSequencer()
	seq.Schedule(center, 5*time.Second, 1500*time.Millisecond)

	clk := &clock.Manual{}
	u := newUpdater(s, clk, &fixedPointer{}, WithEntrances(seq))

	stats := u.Update()
	if sx, _, _ := center.Scale(); sx != 0 {
		t.Fatalf("scale before entrance: got %v, want 0", sx)
	}
	if stats.Hover != game_object.RoleNone {
		t.Fatalf("hidden object was picked: %v", stats.Hover)
	}
	if stats.ActiveEntrances != 1 {
		t.Fatalf("active entrances: got %d, want 1", stats.ActiveEntrances)
	}

	clk.Set(7 * time.Second)
	stats = u.Update()
	if sx, _, _ := center.Scale(); sx != 1 {
		t.Fatalf("scale after entrance: got %v, want 1", sx)
	}
	if stats.ActiveEntrances != 0 {
		t.Fatalf("active entrances: got %d, want 0", stats.ActiveEntrances)
	}
}

func TestAccentLightFollowsHover(t *testing.T) {
	sat := game_object.NewGameObject(
		game_object.WithRole(game_object.RoleOrbitTextA),
		game_object.WithInteractable(true),
		game_object.WithHalfExtents(3, 1, 0.05),
	)
	accent := game_object.NewGameObject(
		game_object.WithRole(game_object.RoleAccentLight),
		game_object.WithLight(light.NewLight(light.LightTypePoint)),
	)
	s := scene.NewScene(scene.WithCamera(camera.NewCamera()), scene.WithObjects(sat, accent))
	u := newUpdater(s, &clock.Manual{}, &fixedPointer{})

	stats := u.Update()
	if stats.Hover != game_object.RoleOrbitTextA {
		t.Fatalf("hover: got %v, want %v", stats.Hover, game_object.RoleOrbitTextA)
	}
	// hit at z=0.05, offset one unit toward the camera at z=25
	if _, _, z := accent.Position(); !approx(z, 1.05) {
		t.Fatalf("accent z: got %v, want 1.05", z)
	}
	if p := accent.Light().Position(); !approx(p[2], 1.05) {
		t.Fatalf("light sync: got %v, want z 1.05", p)
	}
	if accent.Light().Intensity() != tuning.AccentIntensity {
		t.Fatalf("accent intensity: got %v, want %v", accent.Light().Intensity(), tuning.AccentIntensity)
	}
}

func TestHitWithoutObjectIsTreatedAsNoHover(t *testing.T) {
	s := scene.NewScene(scene.WithCamera(camera.NewCamera()))
	u := newUpdater(s, &clock.Manual{}, &fixedPointer{}, WithPicker(emptyHitPicker{}))

	stats := u.Update()
	if stats.Hover != game_object.RoleNone {
		t.Fatalf("hover: got %v, want %v", stats.Hover, game_object.RoleNone)
	}
	if stats.Frame != 1 {
		t.Fatalf("frame: got %d, want 1", stats.Frame)
	}
}
