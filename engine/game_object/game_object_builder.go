package game_object

import (
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithRole sets the role tag of the GameObject.
//
// Parameters:
//   - role: the role the object plays in the scene
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the role
func WithRole(role Role) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.role = role
	}
}

// WithEnabled sets whether the GameObject is drawn.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithInteractable marks the GameObject as a picking target.
//
// Parameters:
//   - interactable: true if the pointer can hover the object
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the interactable flag
func WithInteractable(interactable bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.interactable = interactable
	}
}

// WithText sets the string a text object renders.
//
// Parameters:
//   - text: the text content, lines separated by '\n'
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the text
func WithText(text string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.text = text
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithRotation sets the initial rotation of the GameObject.
//
// Parameters:
//   - rx: the x rotation angle
//   - ry: the y rotation angle
//   - rz: the z rotation angle
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}

// WithEmphasis sets the initial highlight strength, clamped to [0, 1].
//
// Parameters:
//   - emphasis: the emphasis value
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the emphasis
func WithEmphasis(emphasis float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.SetEmphasis(emphasis)
	}
}

// WithColor sets the base RGB color.
//
// Parameters:
//   - color: the color as (r, g, b) in [0, 1]
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the color
func WithColor(color [3]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.color = color
	}
}

// WithHalfExtents sets the local bounding box half-size used for picking.
//
// Parameters:
//   - hx, hy, hz: half extents along each axis
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the bounds
func WithHalfExtents(hx, hy, hz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.halfExtents = [3]float32{hx, hy, hz}
	}
}

// WithPoints sets the local-space point cloud of a particle object.
//
// Parameters:
//   - points: the particle positions
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the points
func WithPoints(points [][3]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.points = points
	}
}

// WithLight attaches a Light to the GameObject. When added to a scene, the
// scene syncs the light's position from the object's transform each frame.
//
// Parameters:
//   - l: the Light to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the attached light
func WithLight(l light.Light) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.attachedLight = l
	}
}
