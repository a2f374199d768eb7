package picking

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-marquee/engine/camera"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/chewxy/math32"
)

func box(role game_object.Role, x, y, z float32) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithRole(role),
		game_object.WithInteractable(true),
		game_object.WithPosition(x, y, z),
		game_object.WithHalfExtents(1, 1, 1),
	)
}

func TestPickWithNoObjectsReportsNone(t *testing.T) {
	p := NewPicker()
	cam := camera.NewCamera()
	if _, ok := p.Pick(0, 0, cam, nil); ok {
		t.Fatal("Pick with no objects reported a hit")
	}
}

func TestPickCenterHitsCenterpiece(t *testing.T) {
	p := NewPicker()
	cam := camera.NewCamera(camera.WithAspect(16.0 / 9.0))
	center := box(game_object.RoleCenterpiece, 0, 0, 0)
	sat := box(game_object.RoleOrbitTextA, 8, 2, 0)

	hit, ok := p.Pick(0, 0, cam, []game_object.GameObject{sat, center})
	if !ok {
		t.Fatal("Pick through the center missed")
	}
	if hit.Object != center {
		t.Fatalf("Pick: got %v, want centerpiece", hit.Object.Role())
	}
	if math32.Abs(hit.Distance-24) > 1e-3 {
		t.Fatalf("Distance: got %v, want 24", hit.Distance)
	}
	if math32.Abs(hit.Point[2]-1) > 1e-3 {
		t.Fatalf("Point: got %v, want z=1", hit.Point)
	}
}

func TestIntersectOrdersNearestFirst(t *testing.T) {
	far := box(game_object.RoleCenterpiece, 0, 0, 0)
	mid := box(game_object.RoleOrbitTextB, 0, 0, 5)
	miss := box(game_object.RoleOrbitTextA, 8, 0, 0)

	hits := NewBoxRaycaster().Intersect([3]float32{0, 0, 25}, [3]float32{0, 0, -1},
		[]game_object.GameObject{far, miss, mid})
	if len(hits) != 2 {
		t.Fatalf("hits: got %d, want 2", len(hits))
	}
	if hits[0].Object != mid || hits[1].Object != far {
		t.Fatalf("order: got %v then %v, want orbit-text-B then centerpiece",
			hits[0].Object.Role(), hits[1].Object.Role())
	}
	if math32.Abs(hits[0].Distance-19) > 1e-4 {
		t.Fatalf("nearest distance: got %v, want 19", hits[0].Distance)
	}
}

func TestIntersectSkipsHiddenObjects(t *testing.T) {
	hidden := box(game_object.RoleCenterpiece, 0, 0, 0)
	hidden.SetScale(0, 0, 0)
	hits := NewBoxRaycaster().Intersect([3]float32{0, 0, 25}, [3]float32{0, 0, -1},
		[]game_object.GameObject{hidden})
	if len(hits) != 0 {
		t.Fatalf("zero-scale object was hit: %+v", hits)
	}
}

func TestIntersectRespectsRotation(t *testing.T) {
	// a thin slab turned edge-on to the ray is missed off-center but hit when facing
	thin := game_object.NewGameObject(
		game_object.WithPosition(0, 0, 0),
		game_object.WithHalfExtents(3, 1, 0.05),
	)
	origin := [3]float32{2, 0, 25}
	dir := [3]float32{0, 0, -1}
	if hits := NewBoxRaycaster().Intersect(origin, dir, []game_object.GameObject{thin}); len(hits) != 1 {
		t.Fatalf("facing slab: got %d hits, want 1", len(hits))
	}
	thin.SetRotation(0, math32.Pi/2, 0)
	if hits := NewBoxRaycaster().Intersect(origin, dir, []game_object.GameObject{thin}); len(hits) != 0 {
		t.Fatalf("edge-on slab: got %d hits, want 0", len(hits))
	}
}

func TestIntersectIgnoresObjectsBehindOrigin(t *testing.T) {
	behind := box(game_object.RoleCenterpiece, 0, 0, 40)
	if hits := NewBoxRaycaster().Intersect([3]float32{0, 0, 25}, [3]float32{0, 0, -1},
		[]game_object.GameObject{behind}); len(hits) != 0 {
		t.Fatalf("object behind the ray origin was hit: %+v", hits)
	}
}

type scriptedRaycaster struct {
	hits []Hit
}

func (s scriptedRaycaster) Intersect(_, _ [3]float32, _ []game_object.GameObject) []Hit {
	return s.hits
}

func TestPickTakesRaycasterOrderAsGroundTruth(t *testing.T) {
	a := box(game_object.RoleOrbitTextA, 0, 0, 0)
	b := box(game_object.RoleOrbitTextB, 0, 0, 0)
	p := NewPicker(WithBroadPhase(false), WithRaycaster(scriptedRaycaster{
		hits: []Hit{{Object: b, Distance: 3}, {Object: a, Distance: 4}},
	}))
	hit, ok := p.Pick(0, 0, camera.NewCamera(), []game_object.GameObject{a, b})
	if !ok || hit.Object != b {
		t.Fatalf("Pick: got %v, %v; want orbit-text-B", hit.Object, ok)
	}
}

func TestBroadPhaseCullsOffscreenObjects(t *testing.T) {
	offscreen := box(game_object.RoleOrbitTextA, 500, 0, 0)
	var seen int
	counting := countingRaycaster{seen: &seen}
	p := NewPicker(WithRaycaster(counting))
	p.Pick(0, 0, camera.NewCamera(), []game_object.GameObject{offscreen})
	if seen != 0 {
		t.Fatalf("raycaster saw %d offscreen candidates, want 0", seen)
	}
}

type countingRaycaster struct {
	seen *int
}

func (c countingRaycaster) Intersect(_, _ [3]float32, objects []game_object.GameObject) []Hit {
	*c.seen += len(objects)
	return nil
}
