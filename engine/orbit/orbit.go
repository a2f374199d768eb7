package orbit

import (
	"github.com/chewxy/math32"
)

// Orbit holds the per-object constants of a satellite.
type Orbit struct {
	// Radius of the circle in the XZ plane.
	Radius float32
	// Phase is added to the shared angle; the two satellites use 0 and π.
	Phase float32
	// YBase is the resting height.
	YBase float32
	// BobAmplitude and BobFrequency describe an optional vertical sine bob over
	// elapsed seconds. A zero amplitude disables it.
	BobAmplitude float32
	BobFrequency float32
}

// Pose is a position plus Euler rotation (Y * X * Z order, radians).
type Pose struct {
	Position [3]float32
	Rotation [3]float32
}

// Evaluate returns the pose of a satellite for the shared angle and elapsed
// seconds. The rotation turns the object's local +Z axis outward along the
// direction from the origin, which is looking at the origin and then turning
// half a revolution about the vertical axis so glyphs read from outside the
// orbit. A pose at the origin keeps a zero rotation.
//
// Parameters:
//   - angle: the shared orbit angle in radians
//   - seconds: elapsed scene time in seconds, drives the bob
//   - o: the satellite's orbit constants
//
// Returns:
//   - Pose: position and rotation
func Evaluate(angle, seconds float32, o Orbit) Pose {
	s, c := math32.Sincos(angle + o.Phase)
	y := o.YBase
	if o.BobAmplitude != 0 {
		y += o.BobAmplitude * math32.Sin(seconds*o.BobFrequency)
	}
	pos := [3]float32{o.Radius * c, y, o.Radius * s}
	return Pose{Position: pos, Rotation: FaceOutward(pos)}
}

// FaceOutward returns the Euler rotation whose +Z axis points along pos.
//
// Parameters:
//   - pos: a position relative to the origin
//
// Returns:
//   - [3]float32: rotation (pitch, yaw, 0)
func FaceOutward(pos [3]float32) [3]float32 {
	l := math32.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	if l == 0 {
		return [3]float32{}
	}
	yaw := math32.Atan2(pos[0], pos[2])
	pitch := -math32.Asin(pos[1] / l)
	return [3]float32{pitch, yaw, 0}
}

// State is the shared orbit angle. The frame updater is its only writer.
type State struct {
	angle float32
	speed float32
}

// NewState creates a State at angle zero that advances by speed radians per frame.
//
// Parameters:
//   - speed: radians added per frame
//
// Returns:
//   - *State: the orbit state
func NewState(speed float32) *State {
	return &State{speed: speed}
}

// Advance adds one frame of speed to the angle. The angle is kept in [0, 2π)
// so float32 precision does not degrade as the session runs.
//
// Returns:
//   - float32: the new angle
func (s *State) Advance() float32 {
	s.angle = math32.Mod(s.angle+s.speed, 2*math32.Pi)
	if s.angle < 0 {
		s.angle += 2 * math32.Pi
	}
	return s.angle
}

// Angle returns the current shared angle.
func (s *State) Angle() float32 {
	return s.angle
}

// Speed returns the per-frame angle increment.
func (s *State) Speed() float32 {
	return s.speed
}
