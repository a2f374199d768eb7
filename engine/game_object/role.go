package game_object

import "fmt"

// Role tags what a GameObject is in the scene. Per-frame systems dispatch on the
// role instead of comparing object references.
type Role int

const (
	// RoleNone is the zero value and never assigned to a registered object.
	RoleNone Role = iota

	// RoleOrbitTextA is the first orbiting satellite text (phase offset 0).
	RoleOrbitTextA

	// RoleOrbitTextB is the second orbiting satellite text (phase offset π).
	RoleOrbitTextB

	// RoleCenterpiece is the privileged interactive object at the scene center.
	// Hovering it boosts its spin instead of moving the accent light.
	RoleCenterpiece

	// RoleWireframe is the decorative wireframe icosahedron.
	RoleWireframe

	// RoleCrystal is the decorative translucent octahedron.
	RoleCrystal

	// RoleStarfield is the background point cloud that follows the pointer.
	RoleStarfield

	// RoleAccentLight carries the hover point light.
	RoleAccentLight
)

var roleNames = map[Role]string{
	RoleNone:        "none",
	RoleOrbitTextA:  "orbit-text-A",
	RoleOrbitTextB:  "orbit-text-B",
	RoleCenterpiece: "centerpiece",
	RoleWireframe:   "wireframe",
	RoleCrystal:     "crystal",
	RoleStarfield:   "starfield",
	RoleAccentLight: "accent-light",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Satellite reports whether the role is one of the two orbiting texts.
func (r Role) Satellite() bool {
	return r == RoleOrbitTextA || r == RoleOrbitTextB
}

// ParseRole converts a role tag such as "orbit-text-A" back into a Role.
//
// Parameters:
//   - s: the role tag
//
// Returns:
//   - Role: the matching role
//   - error: error if the tag is unknown
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if r != RoleNone && name == s {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("unknown role %q", s)
}

// UnmarshalText lets roles be decoded directly from configuration files.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText encodes the role as its tag.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
