package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-marquee/common"
)

// DimensionSource reports the current viewport size in pixels.
type DimensionSource interface {
	Dimensions() (width, height int)
}

// PointerTracker converts device pointer coordinates into normalized device
// coordinates. Move events overwrite the stored value; the frame reads the
// latest one and never waits on input.
type PointerTracker interface {
	// Move records a pointer position given in viewport pixels, origin top-left.
	// Positions outside the viewport are clamped to its edge. Events arriving
	// before the viewport has a size are dropped.
	//
	// Parameters:
	//   - clientX, clientY: the pointer position in pixels
	Move(clientX, clientY float64)

	// Position returns the last normalized position, (0, 0) until the first move.
	//
	// Returns:
	//   - x: horizontal coordinate in [-1, 1], positive right
	//   - y: vertical coordinate in [-1, 1], positive up
	Position() (x, y float32)
}

type pointerTracker struct {
	mu *sync.Mutex

	viewport DimensionSource
	x, y     float32
}

var _ PointerTracker = &pointerTracker{}

// NewPointerTracker creates a PointerTracker that normalizes against the given viewport.
//
// Parameters:
//   - viewport: the source of the current viewport dimensions
//
// Returns:
//   - PointerTracker: the tracker, centered
func NewPointerTracker(viewport DimensionSource) PointerTracker {
	return &pointerTracker{
		mu:       &sync.Mutex{},
		viewport: viewport,
	}
}

// Normalize maps a pixel position to normalized device coordinates in [-1, 1].
//
// Parameters:
//   - clientX, clientY: the position in pixels, origin top-left
//   - width, height: the viewport size (must be > 0)
//
// Returns:
//   - x, y: the clamped normalized coordinates, y positive up
func Normalize(clientX, clientY float64, width, height int) (x, y float32) {
	nx := clientX/float64(width)*2 - 1
	ny := -(clientY/float64(height))*2 + 1
	return float32(common.Clamp(nx, -1, 1)), float32(common.Clamp(ny, -1, 1))
}

func (p *pointerTracker) Move(clientX, clientY float64) {
	if p.viewport == nil {
		return
	}
	w, h := p.viewport.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}
	x, y := Normalize(clientX, clientY, w, h)
	p.mu.Lock()
	p.x, p.y = x, y
	p.mu.Unlock()
}

func (p *pointerTracker) Position() (x, y float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y
}
