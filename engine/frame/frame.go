package frame

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/clock"
	"github.com/Carmen-Shannon/oxy-marquee/engine/entrance"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/Carmen-Shannon/oxy-marquee/engine/highlight"
	"github.com/Carmen-Shannon/oxy-marquee/engine/input"
	"github.com/Carmen-Shannon/oxy-marquee/engine/orbit"
	"github.com/Carmen-Shannon/oxy-marquee/engine/picking"
	"github.com/Carmen-Shannon/oxy-marquee/engine/scene"
	"github.com/chewxy/math32"
)

// DefaultMailboxSize is the number of continuations that can wait for the next frame.
const DefaultMailboxSize = 64

// Wave is amplitude·sin(t·frequency), or the cosine where noted.
type Wave struct {
	Amplitude float32
	Frequency float32
}

func (w Wave) sin(t float32) float32 {
	if w.Amplitude == 0 {
		return 0
	}
	return w.Amplitude * math32.Sin(t*w.Frequency)
}

func (w Wave) cos(t float32) float32 {
	if w.Amplitude == 0 {
		return 0
	}
	return w.Amplitude * math32.Cos(t*w.Frequency)
}

// Satellite binds an orbiting role to its orbit constants.
type Satellite struct {
	Role  game_object.Role
	Orbit orbit.Orbit
}

// Motion holds the per-variant animation constants applied each frame.
type Motion struct {
	Satellites []Satellite

	// CenterpieceBob drives position.y, TiltX rotation.x (sine), TiltZ rotation.z (cosine).
	CenterpieceBob   Wave
	CenterpieceTiltX Wave
	CenterpieceTiltZ Wave

	// WireframeRate and CrystalRate are (x, y) rotation rates in radians per second.
	WireframeRate [2]float32
	CrystalRate   [2]float32

	// StarFollow scales the pointer into the starfield offset; StarSpin is its z spin rate.
	StarFollow float32
	StarSpin   float32
}

// Stats summarises one Update call.
type Stats struct {
	Frame           uint64
	Elapsed         time.Duration
	Hover           game_object.Role
	Mode            highlight.Mode
	ActiveEntrances int
	Continuations   int
}

// Updater is the engine context of the scene. It owns every per-frame system
// and runs them in a fixed order from the frame thread. Asynchronous work hands
// its results back through Post.
type Updater struct {
	clock     clock.Clock
	pointer   input.PointerTracker
	orbit     *orbit.State
	highlight *highlight.Controller
	entrances entrance.Sequencer
	scene     scene.Scene
	picker    picking.Picker
	motion    Motion

	mailbox chan func()
	frame   uint64
}

// NewUpdater creates an Updater with the given options applied. Systems that
// are not supplied get defaults: a wall clock, a pointer fixed at the center,
// an orbit at rest, a zero-tuned highlight controller, an empty sequencer, an
// empty scene, and the default picker.
//
// Parameters:
//   - options: functional options to configure the updater
//
// Returns:
//   - *Updater: the newly created updater
func NewUpdater(options ...UpdaterBuilderOption) *Updater {
	u := &Updater{
		mailbox: make(chan func(), DefaultMailboxSize),
	}
	for _, opt := range options {
		opt(u)
	}

	if u.clock == nil {
		u.clock = clock.New()
	}
	if u.pointer == nil {
		u.pointer = input.NewPointerTracker(nil)
	}
	if u.orbit == nil {
		u.orbit = orbit.NewState(0)
	}
	if u.highlight == nil {
		u.highlight = highlight.NewController(highlight.Tuning{Damping: 1})
	}
	if u.entrances == nil {
		u.entrances = entrance.NewSequencer()
	}
	if u.scene == nil {
		u.scene = scene.NewScene()
	}
	if u.picker == nil {
		u.picker = picking.NewPicker()
	}
	return u
}

// Post queues fn to run at the start of the next Update. It never blocks; when
// the mailbox is full fn is dropped and Post returns false. Safe for concurrent use.
//
// Parameters:
//   - fn: the continuation
//
// Returns:
//   - bool: true if fn was queued
func (u *Updater) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case u.mailbox <- fn:
		return true
	default:
		log.Printf("[Frame] mailbox full, dropping continuation")
		return false
	}
}

// Scene returns the scene driven by the updater.
func (u *Updater) Scene() scene.Scene {
	return u.scene
}

// Clock returns the updater's clock.
func (u *Updater) Clock() clock.Clock {
	return u.clock
}

// Entrances returns the updater's entrance sequencer.
func (u *Updater) Entrances() entrance.Sequencer {
	return u.entrances
}

// Highlight returns the updater's highlight controller.
func (u *Updater) Highlight() *highlight.Controller {
	return u.highlight
}

// Update advances the scene by one frame.
//
// Returns:
//   - Stats: what happened this frame
func (u *Updater) Update() Stats {
	u.frame++
	stats := Stats{Frame: u.frame}

	stats.Continuations = u.drain()

	now := u.clock.Elapsed()
	t := float32(now.Seconds())
	px, py := u.pointer.Position()
	stats.Elapsed = now

	angle := u.orbit.Advance()
	for _, sat := range u.motion.Satellites {
		obj, ok := u.scene.ByRole(sat.Role)
		if !ok {
			continue
		}
		pose := orbit.Evaluate(angle, t, sat.Orbit)
		obj.SetPosition(pose.Position[0], pose.Position[1], pose.Position[2])
		obj.SetRotation(pose.Rotation[0], pose.Rotation[1], pose.Rotation[2])
	}

	center, hasCenter := u.scene.ByRole(game_object.RoleCenterpiece)
	if hasCenter {
		x, _, z := center.Position()
		center.SetPosition(x, u.motion.CenterpieceBob.sin(t), z)
		_, ry, _ := center.Rotation()
		center.SetRotation(u.motion.CenterpieceTiltX.sin(t), ry+u.highlight.Speed(), u.motion.CenterpieceTiltZ.cos(t))
	}

	if obj, ok := u.scene.ByRole(game_object.RoleWireframe); ok {
		obj.SetRotation(t*u.motion.WireframeRate[0], t*u.motion.WireframeRate[1], 0)
	}
	if obj, ok := u.scene.ByRole(game_object.RoleCrystal); ok {
		obj.SetRotation(t*u.motion.CrystalRate[0], t*u.motion.CrystalRate[1], 0)
	}
	if obj, ok := u.scene.ByRole(game_object.RoleStarfield); ok {
		obj.SetPosition(px*u.motion.StarFollow, py*u.motion.StarFollow, 0)
		obj.SetRotation(0, 0, t*u.motion.StarSpin)
	}

	cam := u.scene.Camera()
	var hit picking.Hit
	var hovered bool
	var camPos [3]float32
	if cam != nil {
		hit, hovered = u.picker.Pick(px, py, cam, u.scene.Interactables())
		camPos = cam.Position()
	}

	accent, _ := u.scene.ByRole(game_object.RoleAccentLight)
	frame := highlight.Frame{
		Hit:            hit,
		Hovered:        hovered,
		Interactables:  u.scene.Interactables(),
		Accent:         accent,
		CameraPosition: camPos,
	}
	if hasCenter {
		frame.Centerpiece = center
	}
	stats.Mode = u.highlight.Apply(frame)
	if hovered && hit.Object != nil {
		stats.Hover = hit.Object.Role()
	}

	u.entrances.Advance(now)
	stats.ActiveEntrances = u.entrances.Active()

	u.scene.SyncLights()
	return stats
}

// drain runs the continuations queued before it started. Anything they post
// waits for the next frame.
func (u *Updater) drain() int {
	pending := len(u.mailbox)
	for i := 0; i < pending; i++ {
		u.run(<-u.mailbox)
	}
	return pending
}

func (u *Updater) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Frame] continuation recovered from panic: %v", r)
		}
	}()
	fn()
}
