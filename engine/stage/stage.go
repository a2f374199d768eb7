package stage

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/camera"
	"github.com/Carmen-Shannon/oxy-marquee/engine/config"
	"github.com/Carmen-Shannon/oxy-marquee/engine/entrance"
	"github.com/Carmen-Shannon/oxy-marquee/engine/frame"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/Carmen-Shannon/oxy-marquee/engine/highlight"
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
	"github.com/Carmen-Shannon/oxy-marquee/engine/loader"
	"github.com/Carmen-Shannon/oxy-marquee/engine/orbit"
	"github.com/Carmen-Shannon/oxy-marquee/engine/scene"
	"github.com/chewxy/math32"
)

// Poster hands a continuation to the frame thread.
type Poster interface {
	Post(fn func()) bool
}

// BurstFunc is called on the frame thread when a burst hook fires.
type BurstFunc func(burst config.Burst)

// LogBurst is the default BurstFunc.
func LogBurst(b config.Burst) {
	log.Printf("[Stage] burst %q at %v", b.Name, b.At)
}

// Stage owns the scene built from a variant and the continuation that adds the
// text objects once the typeface is available.
type Stage struct {
	mu *sync.Mutex

	variant config.Variant
	scene   scene.Scene
	camera  camera.Camera

	textReady bool
	texts     []game_object.GameObject
}

// Build creates the camera, lights, and decorative objects of a variant.
// Text objects are added later by PopulateText.
//
// Parameters:
//   - v: the resolved variant
//   - aspect: the initial viewport aspect ratio, ignored when not positive
//
// Returns:
//   - *Stage: the stage
func Build(v config.Variant, aspect float32) *Stage {
	cam := camera.NewCamera(
		camera.WithPosition(v.Camera.Position[0], v.Camera.Position[1], v.Camera.Position[2]),
		camera.WithTarget(0, 0, 0),
		camera.WithFov(v.Camera.Fov*(math32.Pi/180)),
		camera.WithAspect(aspect),
		camera.WithNear(v.Camera.Near),
		camera.WithFar(v.Camera.Far),
	)

	s := scene.NewScene(
		scene.WithName(v.Name),
		scene.WithCamera(cam),
		scene.WithBackground(v.Background),
	)

	amb := v.Lights.Ambient
	s.AddLight(light.NewLight(light.LightTypeAmbient,
		light.WithHexColor(amb.Color),
		light.WithIntensity(amb.Intensity),
	))
	for _, d := range v.Lights.Directional {
		s.AddLight(light.NewLight(light.LightTypeDirectional,
			light.WithHexColor(d.Color),
			light.WithIntensity(d.Intensity),
			light.WithPosition(d.Position[0], d.Position[1], d.Position[2]),
		))
	}

	s.Add(spinner(game_object.RoleWireframe, v.Decor.Wireframe))
	s.Add(spinner(game_object.RoleCrystal, v.Decor.Crystal))
	s.Add(game_object.NewGameObject(
		game_object.WithRole(game_object.RoleStarfield),
		game_object.WithPoints(Starfield(v.Decor.Starfield)),
		game_object.WithColor([3]float32{1, 1, 1}),
	))

	h := v.Highlight
	s.Add(game_object.NewGameObject(
		game_object.WithRole(game_object.RoleAccentLight),
		game_object.WithLight(light.NewLight(light.LightTypePoint,
			light.WithHexColor(h.AccentColor),
			light.WithIntensity(0),
			light.WithRange(h.AccentRange),
		)),
	))

	return &Stage{
		mu:      &sync.Mutex{},
		variant: v,
		scene:   s,
		camera:  cam,
	}
}

func spinner(role game_object.Role, sp config.Spinner) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithRole(role),
		game_object.WithColor(light.HexToRGB(sp.Color)),
		game_object.WithHalfExtents(sp.Radius, sp.Radius, sp.Radius),
	)
}

// Starfield scatters points uniformly in x and y over [-spread/2, spread/2] and
// in z over [-spread, 0]. A zero seed draws a fresh field each run.
//
// Parameters:
//   - sf: the starfield constants
//
// Returns:
//   - [][3]float32: the points
func Starfield(sf config.Starfield) [][3]float32 {
	seed := sf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	points := make([][3]float32, sf.Count)
	for i := range points {
		points[i] = [3]float32{
			(rng.Float32() - 0.5) * sf.Spread,
			(rng.Float32() - 0.5) * sf.Spread,
			-rng.Float32() * sf.Spread,
		}
	}
	return points
}

// Scene returns the stage's scene.
func (st *Stage) Scene() scene.Scene {
	return st.scene
}

// Camera returns the stage's camera.
func (st *Stage) Camera() camera.Camera {
	return st.camera
}

// Variant returns the variant the stage was built from.
func (st *Stage) Variant() config.Variant {
	return st.variant
}

// Tuning converts the variant's highlight block for the highlight controller.
func (st *Stage) Tuning() highlight.Tuning {
	h := st.variant.Highlight
	return highlight.Tuning{
		DefaultSpeed:          h.DefaultSpeed,
		BoostSpeed:            h.BoostSpeed,
		Damping:               h.Damping,
		CenterpieceRest:       h.CenterpieceRest,
		CenterpieceBoost:      h.CenterpieceBoost,
		SatelliteBoost:        h.SatelliteBoost,
		CenterpieceHoverScale: h.CenterpieceHoverScale,
		SatelliteHoverScale:   h.SatelliteHoverScale,
		AccentIntensity:       h.AccentIntensity,
		AccentOffset:          h.AccentOffset,
	}
}

// Motion converts the variant's animation constants for the frame updater.
func (st *Stage) Motion() frame.Motion {
	v := st.variant
	m := frame.Motion{
		CenterpieceBob:   frame.Wave(v.Centerpiece.Bob),
		CenterpieceTiltX: frame.Wave(v.Centerpiece.TiltX),
		CenterpieceTiltZ: frame.Wave(v.Centerpiece.TiltZ),
		WireframeRate:    [2]float32{v.Decor.Wireframe.RateX, v.Decor.Wireframe.RateY},
		CrystalRate:      [2]float32{v.Decor.Crystal.RateX, v.Decor.Crystal.RateY},
		StarFollow:       v.Decor.Starfield.Follow,
		StarSpin:         v.Decor.Starfield.Spin,
	}
	for _, sat := range v.Satellites {
		m.Satellites = append(m.Satellites, frame.Satellite{
			Role: sat.Role,
			Orbit: orbit.Orbit{
				Radius:       v.Orbit.Radius,
				Phase:        sat.Phase,
				YBase:        sat.YBase,
				BobAmplitude: sat.Bob.Amplitude,
				BobFrequency: sat.Bob.Frequency,
			},
		})
	}
	return m
}

// PopulateText creates the satellites and the centerpiece sized from tf and, when
// the variant has one, schedules their staggered entrance from now. It runs on
// the frame thread and only the first call has any effect.
//
// Parameters:
//   - tf: the loaded typeface
//   - now: the clock reading at which the asset became ready
//   - seq: the sequencer that animates the entrance, may be nil
//
// Returns:
//   - bool: true if the text objects were created by this call
func (st *Stage) PopulateText(tf *loader.Typeface, now time.Duration, seq entrance.Sequencer) bool {
	if tf == nil {
		return false
	}

	st.mu.Lock()
	if st.textReady {
		st.mu.Unlock()
		return false
	}
	st.textReady = true
	st.mu.Unlock()

	v := st.variant
	style := v.Text.Satellite
	for _, sat := range v.Satellites {
		pose := orbit.Evaluate(0, 0, orbit.Orbit{Radius: v.Orbit.Radius, Phase: sat.Phase, YBase: sat.YBase})
		he := tf.Measure(sat.Text, style.Size, style.Depth)
		obj := game_object.NewGameObject(
			game_object.WithRole(sat.Role),
			game_object.WithInteractable(true),
			game_object.WithText(sat.Text),
			game_object.WithPosition(pose.Position[0], pose.Position[1], pose.Position[2]),
			game_object.WithRotation(pose.Rotation[0], pose.Rotation[1], pose.Rotation[2]),
			game_object.WithHalfExtents(he[0], he[1], he[2]),
			game_object.WithColor(light.HexToRGB(style.Color)),
		)
		st.scene.Add(obj)
		st.texts = append(st.texts, obj)
	}

	cs := v.Text.Centerpiece
	he := tf.Measure(cs.Text, cs.Size, cs.Depth)
	center := game_object.NewGameObject(
		game_object.WithRole(game_object.RoleCenterpiece),
		game_object.WithInteractable(true),
		game_object.WithText(cs.Text),
		game_object.WithHalfExtents(he[0], he[1], he[2]),
		game_object.WithColor(light.HexToRGB(cs.Color)),
		game_object.WithEmphasis(v.Highlight.CenterpieceRest),
	)
	st.scene.Add(center)
	st.texts = append(st.texts, center)

	log.Printf("[Stage] created %d text objects", len(st.texts))
	st.scheduleEntrance(now, seq)
	return true
}

// Replay restarts the entrance of every text object from now. It has no effect
// before the text exists or when the variant has no entrance.
//
// Parameters:
//   - now: the current clock reading
//   - seq: the sequencer
//
// Returns:
//   - bool: true if the entrance was rescheduled
func (st *Stage) Replay(now time.Duration, seq entrance.Sequencer) bool {
	if seq == nil || !st.variant.Entrance.Enabled || len(st.texts) == 0 {
		return false
	}
	seq.Clear()
	st.scheduleEntrance(now, seq)
	return true
}

// scheduleEntrance staggers the entrance in text creation order: A, B, centerpiece.
func (st *Stage) scheduleEntrance(now time.Duration, seq entrance.Sequencer) {
	e := st.variant.Entrance
	if seq == nil || !e.Enabled {
		return
	}
	for i, obj := range st.texts {
		seq.Schedule(obj, now+e.Delay+time.Duration(i)*e.Stagger, e.Duration)
	}
}

// Texts returns the text objects in creation order.
func (st *Stage) Texts() []game_object.GameObject {
	return append([]game_object.GameObject(nil), st.texts...)
}

// StartBursts arms one timer per burst hook. When a timer fires, fn is posted to
// the frame thread. The returned function stops any timers that have not fired.
//
// Parameters:
//   - p: the frame mailbox
//   - fn: the burst callback, LogBurst when nil
//
// Returns:
//   - func(): stops pending bursts
func (st *Stage) StartBursts(p Poster, fn BurstFunc) func() {
	if fn == nil {
		fn = LogBurst
	}
	timers := make([]*time.Timer, 0, len(st.variant.Bursts))
	for _, b := range st.variant.Bursts {
		timers = append(timers, time.AfterFunc(b.At, func() {
			p.Post(func() { fn(b) })
		}))
	}
	return func() {
		for _, t := range timers {
			t.Stop()
		}
	}
}
