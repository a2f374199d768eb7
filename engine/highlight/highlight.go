package highlight

import (
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
	"github.com/Carmen-Shannon/oxy-marquee/engine/picking"
	"github.com/go-gl/mathgl/mgl32"
)

// Tuning holds the highlight constants of a scene variant.
type Tuning struct {
	// DefaultSpeed is the centerpiece spin, in radians per frame, at rest.
	DefaultSpeed float32
	// BoostSpeed is the spin while the centerpiece is hovered.
	BoostSpeed float32
	// Damping is the per-frame relaxation factor k in speed += (default - speed)·k.
	Damping float32

	// CenterpieceRest is the centerpiece emphasis when nothing is hovered.
	CenterpieceRest float32
	// CenterpieceBoost is the centerpiece emphasis while hovered.
	CenterpieceBoost float32
	// SatelliteBoost is the emphasis of any other hovered object.
	SatelliteBoost float32

	// CenterpieceHoverScale and SatelliteHoverScale are uniform scales applied
	// to the hovered object. 1 disables the effect.
	CenterpieceHoverScale float32
	SatelliteHoverScale   float32

	// AccentIntensity is the accent light intensity while a satellite is hovered.
	AccentIntensity float32
	// AccentOffset moves the accent light from the hit point toward the camera.
	AccentOffset float32
}

// Mode is the controller's state for one frame.
type Mode int

const (
	// ModeIdle means nothing is under the pointer.
	ModeIdle Mode = iota
	// ModeHoverCenterpiece means the centerpiece is under the pointer.
	ModeHoverCenterpiece
	// ModeHoverOther means another interactable is under the pointer.
	ModeHoverOther
)

func (m Mode) String() string {
	switch m {
	case ModeHoverCenterpiece:
		return "hover-centerpiece"
	case ModeHoverOther:
		return "hover-other"
	default:
		return "idle"
	}
}

// Frame is the input of one Apply call.
type Frame struct {
	// Hit and Hovered are the picking result.
	Hit     picking.Hit
	Hovered bool
	// Interactables are the objects whose emphasis and hover scale are owned by the controller.
	Interactables []game_object.GameObject
	// Centerpiece may be nil before the text has loaded.
	Centerpiece game_object.GameObject
	// Accent is the object carrying the accent light, may be nil. The controller
	// moves the object and scene light sync carries the position to the light.
	Accent game_object.GameObject
	// CameraPosition is used to offset the accent light toward the viewer.
	CameraPosition [3]float32
}

// Controller applies hover emphasis each frame and owns the centerpiece spin speed.
// Emphasis is recomputed from scratch every frame, so at most one object is
// emphasized and the only carried state is the smoothed speed.
type Controller struct {
	tuning Tuning
	speed  float32
}

// NewController creates a Controller with its speed at the default value.
//
// Parameters:
//   - tuning: the variant's highlight constants
//
// Returns:
//   - *Controller: the controller
func NewController(tuning Tuning) *Controller {
	return &Controller{tuning: tuning, speed: tuning.DefaultSpeed}
}

// Speed returns the current centerpiece spin speed in radians per frame.
func (c *Controller) Speed() float32 {
	return c.speed
}

// Tuning returns the controller's constants.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Apply runs one frame of the highlight state machine.
//
// Parameters:
//   - f: the frame input
//
// Returns:
//   - Mode: the state the frame resolved to
func (c *Controller) Apply(f Frame) Mode {
	t := c.tuning

	accent := accentLight(f.Accent)
	if accent != nil {
		accent.SetIntensity(0)
	}
	c.speed += (t.DefaultSpeed - c.speed) * t.Damping

	for _, obj := range f.Interactables {
		obj.SetEmphasis(0)
		obj.SetScale(1, 1, 1)
	}

	if !f.Hovered || f.Hit.Object == nil {
		if f.Centerpiece != nil {
			f.Centerpiece.SetEmphasis(t.CenterpieceRest)
		}
		return ModeIdle
	}

	obj := f.Hit.Object
	switch obj.Role() {
	case game_object.RoleCenterpiece:
		c.speed = t.BoostSpeed
		obj.SetEmphasis(t.CenterpieceBoost)
		s := hoverScale(t.CenterpieceHoverScale)
		obj.SetScale(s, s, s)
		return ModeHoverCenterpiece
	default:
		if accent != nil {
			p := c.accentPosition(f.Hit.Point, f.CameraPosition)
			f.Accent.SetPosition(p[0], p[1], p[2])
			accent.SetIntensity(t.AccentIntensity)
		}
		obj.SetEmphasis(t.SatelliteBoost)
		s := hoverScale(t.SatelliteHoverScale)
		obj.SetScale(s, s, s)
		return ModeHoverOther
	}
}

// accentPosition offsets the hit point toward the camera so the light sits in
// front of the surface it illuminates.
func (c *Controller) accentPosition(point, cameraPos [3]float32) [3]float32 {
	p := mgl32.Vec3(point)
	toCamera := mgl32.Vec3(cameraPos).Sub(p)
	if toCamera.Len() == 0 {
		return point
	}
	return p.Add(toCamera.Normalize().Mul(c.tuning.AccentOffset))
}

func accentLight(obj game_object.GameObject) light.Light {
	if obj == nil {
		return nil
	}
	return obj.Light()
}

func hoverScale(s float32) float32 {
	if s <= 0 {
		return 1
	}
	return s
}
