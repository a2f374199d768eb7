package picking

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-marquee/common"
	"github.com/Carmen-Shannon/oxy-marquee/engine/camera"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Hit is one ray intersection.
type Hit struct {
	// Object is the intersected object.
	Object game_object.GameObject
	// Distance is measured along the unit ray direction from its origin.
	Distance float32
	// Point is the world-space intersection point.
	Point [3]float32
}

// Raycaster intersects a world-space ray with a set of objects.
// Implementations must return hits sorted nearest-first; equal distances keep
// the order of the input slice.
type Raycaster interface {
	// Intersect returns every object the ray enters.
	//
	// Parameters:
	//   - origin: the ray origin
	//   - direction: the unit ray direction
	//   - objects: the candidates
	//
	// Returns:
	//   - []Hit: the hits, nearest first
	Intersect(origin, direction [3]float32, objects []game_object.GameObject) []Hit
}

// Picker resolves the object under the pointer each frame.
type Picker interface {
	// Pick casts a ray from the camera through the normalized pointer position
	// and returns the nearest hit. No candidates, or no intersection, reports
	// false without error.
	//
	// Parameters:
	//   - ndcX, ndcY: normalized pointer coordinates in [-1, 1]
	//   - cam: the camera the scene is viewed through
	//   - objects: the interactable candidates
	//
	// Returns:
	//   - Hit: the nearest hit
	//   - bool: true if anything was hit
	Pick(ndcX, ndcY float32, cam camera.Camera, objects []game_object.GameObject) (Hit, bool)
}

type pickerImpl struct {
	raycaster  Raycaster
	broadPhase bool
}

var _ Picker = &pickerImpl{}

// NewPicker creates a Picker backed by the oriented-box raycaster with frustum
// broad-phase enabled, unless overridden by options.
//
// Parameters:
//   - options: functional options to configure the picker
//
// Returns:
//   - Picker: the picker
func NewPicker(options ...PickerBuilderOption) Picker {
	p := &pickerImpl{
		raycaster:  NewBoxRaycaster(),
		broadPhase: true,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pickerImpl) Pick(ndcX, ndcY float32, cam camera.Camera, objects []game_object.GameObject) (Hit, bool) {
	if len(objects) == 0 || cam == nil {
		return Hit{}, false
	}

	candidates := objects
	if p.broadPhase {
		vp := cam.ViewProjectionMatrix()
		frustum := common.ExtractFrustumFromMatrix(vp[:])
		candidates = make([]game_object.GameObject, 0, len(objects))
		for _, obj := range objects {
			center, radius := boundingSphere(obj)
			if frustum.ContainsSphere(center, radius) {
				candidates = append(candidates, obj)
			}
		}
	}

	origin, dir := cam.Ray(ndcX, ndcY)
	hits := p.raycaster.Intersect(origin, dir, candidates)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// boundingSphere returns a world-space sphere enclosing the object's box.
func boundingSphere(obj game_object.GameObject) ([3]float32, float32) {
	pos, _, scale := obj.TransformData()
	h := obj.HalfExtents()
	s := max(math32.Abs(scale[0]), math32.Abs(scale[1]), math32.Abs(scale[2]))
	return pos, mgl32.Vec3(h).Len() * s
}

type boxRaycaster struct{}

var _ Raycaster = boxRaycaster{}

// NewBoxRaycaster creates a Raycaster that treats each object as its local
// bounding box under the object's full transform. Objects with a singular
// transform (any zero scale axis) or an empty box cannot be hit.
//
// Returns:
//   - Raycaster: the raycaster
func NewBoxRaycaster() Raycaster {
	return boxRaycaster{}
}

func (boxRaycaster) Intersect(origin, direction [3]float32, objects []game_object.GameObject) []Hit {
	var hits []Hit
	o := mgl32.Vec3(origin)
	d := mgl32.Vec3(direction)

	for _, obj := range objects {
		h := obj.HalfExtents()
		if h[0] <= 0 && h[1] <= 0 && h[2] <= 0 {
			continue
		}
		model := obj.ModelMatrix()
		var inv [16]float32
		if !common.Invert4(inv[:], model[:]) {
			continue
		}
		m := mgl32.Mat4(inv)
		lo := m.Mul4x1(o.Vec4(1)).Vec3()
		ld := m.Mul4x1(d.Vec4(0)).Vec3()

		t, ok := slab(lo, ld, h)
		if !ok {
			continue
		}
		hits = append(hits, Hit{
			Object:   obj,
			Distance: t,
			Point:    o.Add(d.Mul(t)),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// slab intersects the local-space ray lo + t·ld with the box [-h, h]. The ray
// parameter t is shared with world space because the transform is affine.
// Returns the entry distance, or the exit distance when the origin is inside.
func slab(lo, ld mgl32.Vec3, h [3]float32) (float32, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if math32.Abs(ld[axis]) < 1e-12 {
			if lo[axis] < -h[axis] || lo[axis] > h[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / ld[axis]
		t1 := (-h[axis] - lo[axis]) * inv
		t2 := (h[axis] - lo[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}
