package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
)

func TestAddAssignsIDsAndIndexesRoles(t *testing.T) {
	s := NewScene()
	a := game_object.NewGameObject(game_object.WithRole(game_object.RoleOrbitTextA), game_object.WithInteractable(true))
	w := game_object.NewGameObject(game_object.WithRole(game_object.RoleWireframe))

	idA := s.Add(a)
	idW := s.Add(w)
	if idA == 0 || idW == 0 || idA == idW {
		t.Fatalf("ids: got %d and %d, want distinct non-zero", idA, idW)
	}
	got, ok := s.ByRole(game_object.RoleOrbitTextA)
	if !ok || got != a {
		t.Fatalf("ByRole(orbit-text-A): got %v, %v", got, ok)
	}
	if _, ok := s.ByRole(game_object.RoleCenterpiece); ok {
		t.Fatal("ByRole(centerpiece): expected no object before it is added")
	}
	if objs := s.Objects(); len(objs) != 2 || objs[1] != w {
		t.Fatalf("Objects: got %v, want [a w]", objs)
	}
}

func TestInteractablesKeepInsertionOrder(t *testing.T) {
	s := NewScene()
	roles := []game_object.Role{
		game_object.RoleOrbitTextA,
		game_object.RoleStarfield,
		game_object.RoleOrbitTextB,
		game_object.RoleCenterpiece,
	}
	for _, r := range roles {
		s.Add(game_object.NewGameObject(
			game_object.WithRole(r),
			game_object.WithInteractable(r != game_object.RoleStarfield),
		))
	}
	got := s.Interactables()
	want := []game_object.Role{game_object.RoleOrbitTextA, game_object.RoleOrbitTextB, game_object.RoleCenterpiece}
	if len(got) != len(want) {
		t.Fatalf("Interactables: got %d objects, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Role() != want[i] {
			t.Errorf("Interactables[%d]: got %v, want %v", i, got[i].Role(), want[i])
		}
	}
}

func TestEmptySceneHasNoInteractables(t *testing.T) {
	s := NewScene()
	if n := len(s.Interactables()); n != 0 {
		t.Fatalf("Interactables: got %d, want 0", n)
	}
}

func TestSyncLightsFollowsOwner(t *testing.T) {
	l := light.NewLight(light.LightTypePoint)
	obj := game_object.NewGameObject(game_object.WithRole(game_object.RoleAccentLight), game_object.WithLight(l))
	s := NewScene(WithLights(light.NewLight(light.LightTypeAmbient)), WithObjects(obj))

	if n := len(s.Lights()); n != 2 {
		t.Fatalf("Lights: got %d, want 2", n)
	}
	obj.SetPosition(1, 2, 3)
	s.SyncLights()
	if got := l.Position(); got != [3]float32{1, 2, 3} {
		t.Fatalf("light position: got %v, want [1 2 3]", got)
	}
}
