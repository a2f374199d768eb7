package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-marquee/common"
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
)

type gameObject struct {
	id           uint64
	role         Role
	enabled      atomic.Bool
	interactable bool
	text         string

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	emphasis    float32
	color       [3]float32
	halfExtents [3]float32
	points      [][3]float32

	attachedLight light.Light
}

// GameObject is a role-tagged scene entity with a mutable transform and a
// visual-emphasis value. Objects are created once and owned by a Scene; the
// frame systems rewrite their transforms every frame.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID (0 until added to a Scene)
	ID() uint64

	// Role returns the object's role tag.
	//
	// Returns:
	//   - Role: the role
	Role() Role

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Interactable returns whether picking considers this object.
	//
	// Returns:
	//   - bool: true if the object can be hovered
	Interactable() bool

	// Text returns the string rendered by text objects, or "" for other objects.
	//
	// Returns:
	//   - string: the text content
	Text() string

	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation in radians, applied in Y * X * Z order.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// TransformData returns position, rotation and scale in one call.
	//
	// Returns:
	//   - pos: position as [3]float32
	//   - rot: rotation as [3]float32
	//   - scale: scale as [3]float32
	TransformData() (pos, rot, scale [3]float32)

	// ModelMatrix builds the column-major model matrix from the current transform.
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// Emphasis returns the emissive highlight strength in [0, 1].
	//
	// Returns:
	//   - float32: the emphasis value
	Emphasis() float32

	// Color returns the base RGB color used by the renderer.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// HalfExtents returns the half-size of the object's local bounding box,
	// centered on the local origin. Picking intersects rays with this box.
	//
	// Returns:
	//   - [3]float32: half extents along x, y, z
	HalfExtents() [3]float32

	// Points returns the local-space point cloud of particle objects, or nil.
	//
	// Returns:
	//   - [][3]float32: the points
	Points() [][3]float32

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition updates the world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation updates the Euler rotation.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles in radians
	SetRotation(rx, ry, rz float32)

	// SetScale updates the per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetEmphasis sets the highlight strength, clamped to [0, 1].
	//
	// Parameters:
	//   - emphasis: the new emphasis value
	SetEmphasis(emphasis float32)

	// SetHalfExtents replaces the local bounding box half-size.
	//
	// Parameters:
	//   - hx, hy, hz: half extents along each axis
	SetHalfExtents(hx, hy, hz float32)

	// SetLight attaches a Light to this object. The scene syncs the light's
	// position from the object's transform each frame. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject with unit scale, configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
		color: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Role() Role {
	return g.role
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Interactable() bool {
	return g.interactable
}

func (g *gameObject) Text() string {
	return g.text
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) TransformData() (pos, rot, scale [3]float32) {
	return g.position, g.rotation, g.scale
}

func (g *gameObject) ModelMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:], g.position, g.rotation, g.scale)
	return m
}

func (g *gameObject) Emphasis() float32 {
	return g.emphasis
}

func (g *gameObject) Color() [3]float32 {
	return g.color
}

func (g *gameObject) HalfExtents() [3]float32 {
	return g.halfExtents
}

func (g *gameObject) Points() [][3]float32 {
	return g.points
}

func (g *gameObject) Light() light.Light {
	return g.attachedLight
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetEmphasis(emphasis float32) {
	g.emphasis = common.Clamp(emphasis, 0, 1)
}

func (g *gameObject) SetHalfExtents(hx, hy, hz float32) {
	g.halfExtents = [3]float32{hx, hy, hz}
}

func (g *gameObject) SetLight(l light.Light) {
	g.attachedLight = l
}
