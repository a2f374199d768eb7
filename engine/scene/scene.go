package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-marquee/engine/camera"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/Carmen-Shannon/oxy-marquee/engine/light"
)

// Scene is the registry of every animated or interactive object in the
// presentation, plus the camera and lights they are viewed with.
// Objects are added once (text objects only after their typeface has loaded)
// and are never removed during a session. Lookups by role are the checked
// condition the frame systems use to tolerate objects that never arrived.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Background returns the clear color drawn behind the scene.
	//
	// Returns:
	//   - [4]float64: color as (r, g, b, a)
	Background() [4]float64

	// Add registers an object, assigning it an ID if it has none. If the object
	// carries a light, the light is added to the scene's light list as well.
	// A later object with the same role replaces the earlier one in the role
	// index; both stay in the registry.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// ByRole returns the object registered for a role.
	//
	// Parameters:
	//   - role: the role to look up
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil
	//   - bool: true if an object holds the role
	ByRole(role game_object.Role) (game_object.GameObject, bool)

	// Objects returns every registered object in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: a copy of the object list
	Objects() []game_object.GameObject

	// Interactables returns the enabled, interactable objects in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: the picking candidates
	Interactables() []game_object.GameObject

	// AddLight registers a free-standing light such as an ambient or directional light.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// Lights returns a copy of the scene's lights.
	//
	// Returns:
	//   - []light.Light: every light, free-standing and attached
	Lights() []light.Light

	// SyncLights copies each attached light's position from its owning object.
	SyncLights()
}

type scene struct {
	mu *sync.RWMutex

	name       string
	background [4]float64

	objects []game_object.GameObject
	byID    map[uint64]game_object.GameObject
	byRole  map[game_object.Role]game_object.GameObject
	nextID  uint64

	cam camera.Camera

	lights       []light.Light
	lightObjects []game_object.GameObject
}

var _ Scene = &scene{}

// NewScene creates an empty Scene with the given options applied.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:         &sync.RWMutex{},
		name:       "scene",
		background: [4]float64{0, 0, 0, 1},
		byID:       make(map[uint64]game_object.GameObject),
		byRole:     make(map[game_object.Role]game_object.GameObject),
		nextID:     1,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Background() [4]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj. Caller must hold the write lock.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	if _, exists := s.byID[obj.ID()]; !exists {
		s.objects = append(s.objects, obj)
	}
	s.byID[obj.ID()] = obj
	if obj.Role() != game_object.RoleNone {
		s.byRole[obj.Role()] = obj
	}
	if l := obj.Light(); l != nil {
		s.lightObjects = append(s.lightObjects, obj)
		s.lights = append(s.lights, l)
	}
	return obj.ID()
}

func (s *scene) ByRole(role game_object.Role) (game_object.GameObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.byRole[role]
	return obj, ok
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *scene) Interactables() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []game_object.GameObject
	for _, obj := range s.objects {
		if obj.Interactable() && obj.Enabled() {
			out = append(out, obj)
		}
	}
	return out
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) SyncLights() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obj := range s.lightObjects {
		if l := obj.Light(); l != nil {
			x, y, z := obj.Position()
			l.SetPosition(x, y, z)
		}
	}
}
