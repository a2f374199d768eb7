package entrance

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/common"
	"github.com/Carmen-Shannon/oxy-marquee/engine/game_object"
	"github.com/chewxy/math32"
)

// Sequencer animates objects from scale 0 and a half turn about X into their
// resting pose with an ease-out cubic curve.
type Sequencer interface {
	// Schedule appends an entrance for obj and immediately hides it (scale 0).
	//
	// Parameters:
	//   - obj: the object to animate
	//   - start: clock time at which the animation begins
	//   - duration: animation length; a non-positive duration completes on the first Advance at or after start
	Schedule(obj game_object.GameObject, start, duration time.Duration)

	// Advance writes scale and rotation.x for every active entrance at clock time now.
	// Completed entrances receive their exact final pose and are removed.
	//
	// Parameters:
	//   - now: the current clock reading
	Advance(now time.Duration)

	// Active returns the number of entrances that have not completed.
	//
	// Returns:
	//   - int: the active count
	Active() int

	// Clear drops every active entrance without touching the objects.
	Clear()
}

type entry struct {
	obj      game_object.GameObject
	start    time.Duration
	duration time.Duration
}

type sequencer struct {
	mu      *sync.Mutex
	entries []entry
}

var _ Sequencer = &sequencer{}

// NewSequencer creates an empty Sequencer.
//
// Returns:
//   - Sequencer: the sequencer
func NewSequencer() Sequencer {
	return &sequencer{mu: &sync.Mutex{}}
}

// Ease maps linear progress p in [0,1] onto the ease-out cubic curve 1-(1-p)³.
func Ease(p float32) float32 {
	q := 1 - common.Clamp(p, 0, 1)
	return 1 - q*q*q
}

func (s *sequencer) Schedule(obj game_object.GameObject, start, duration time.Duration) {
	if obj == nil {
		return
	}
	obj.SetScale(0, 0, 0)

	s.mu.Lock()
	s.entries = append(s.entries, entry{obj: obj, start: start, duration: duration})
	s.mu.Unlock()
}

func (s *sequencer) Advance(now time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if !apply(e, now) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = entry{}
	}
	s.entries = kept
}

// apply poses one entry and reports whether it has completed.
func apply(e entry, now time.Duration) bool {
	_, ry, rz := e.obj.Rotation()
	if now < e.start {
		e.obj.SetScale(0, 0, 0)
		e.obj.SetRotation(math32.Pi, ry, rz)
		return false
	}

	p := float32(1)
	if e.duration > 0 {
		p = float32(now-e.start) / float32(e.duration)
	}
	if p >= 1 {
		e.obj.SetScale(1, 1, 1)
		e.obj.SetRotation(0, ry, rz)
		return true
	}

	eased := Ease(p)
	e.obj.SetScale(eased, eased, eased)
	e.obj.SetRotation((1-eased)*math32.Pi, ry, rz)
	return false
}

func (s *sequencer) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *sequencer) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
