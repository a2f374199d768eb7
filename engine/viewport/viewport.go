package viewport

import (
	"sync"
)

const (
	// DefaultUltraWideAbove is the aspect ratio above which the layout is ultra-wide.
	DefaultUltraWideAbove = 2.5

	// DefaultPortraitBelow is the aspect ratio below which the layout is portrait.
	DefaultPortraitBelow = 0.75
)

// Layout is the classification published to layout consumers.
// The two flags are never both set.
type Layout struct {
	UltraWide bool
	Portrait  bool
}

// State is a snapshot of the viewport.
type State struct {
	Width  int
	Height int
	Aspect float64
	Layout Layout
}

// AspectReceiver is the camera side of a resize.
type AspectReceiver interface {
	SetAspect(aspect float32)
}

// SurfaceResizer is the render-surface side of a resize.
type SurfaceResizer interface {
	Resize(width, height int)
}

// LayoutObserver is notified whenever the layout classification changes.
type LayoutObserver func(Layout)

// Handler applies viewport changes. Camera aspect, surface size and layout
// flags are updated inside one call, so a frame never sees one without the
// others. The window's framebuffer callback is the single writer.
type Handler interface {
	// Resize applies new framebuffer dimensions. Zero dimensions (a minimized
	// window) and dimensions equal to the last applied ones are ignored.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	//
	// Returns:
	//   - bool: true if the change was applied
	Resize(width, height int) bool

	// State returns the last applied viewport snapshot.
	//
	// Returns:
	//   - State: the current viewport state
	State() State

	// Dimensions returns the last applied pixel dimensions.
	//
	// Returns:
	//   - width, height: the framebuffer size, zero before the first Resize
	Dimensions() (width, height int)
}

type handlerImpl struct {
	mu *sync.RWMutex

	state   State
	applied bool

	ultraWideAbove float64
	portraitBelow  float64

	camera   AspectReceiver
	surface  SurfaceResizer
	observer LayoutObserver
}

var _ Handler = &handlerImpl{}

// NewHandler creates a Handler with the default layout thresholds and the given options applied.
//
// Parameters:
//   - options: functional options to configure the handler
//
// Returns:
//   - Handler: the newly created handler
func NewHandler(options ...HandlerBuilderOption) Handler {
	h := &handlerImpl{
		mu:             &sync.RWMutex{},
		ultraWideAbove: DefaultUltraWideAbove,
		portraitBelow:  DefaultPortraitBelow,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

// Classify returns the layout for an aspect ratio. Both comparisons are strict.
//
// Parameters:
//   - aspect: width / height
//   - ultraWideAbove: threshold for the ultra-wide flag
//   - portraitBelow: threshold for the portrait flag
//
// Returns:
//   - Layout: the classification
func Classify(aspect, ultraWideAbove, portraitBelow float64) Layout {
	return Layout{
		UltraWide: aspect > ultraWideAbove,
		Portrait:  aspect < portraitBelow,
	}
}

func (h *handlerImpl) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	h.mu.Lock()
	if h.applied && h.state.Width == width && h.state.Height == height {
		h.mu.Unlock()
		return false
	}

	aspect := float64(width) / float64(height)
	prev := h.state.Layout
	first := !h.applied
	layout := Classify(aspect, h.ultraWideAbove, h.portraitBelow)

	if h.camera != nil {
		h.camera.SetAspect(float32(aspect))
	}
	if h.surface != nil {
		h.surface.Resize(width, height)
	}
	h.state = State{Width: width, Height: height, Aspect: aspect, Layout: layout}
	h.applied = true
	observer := h.observer
	h.mu.Unlock()

	if observer != nil && (first || layout != prev) {
		observer(layout)
	}
	return true
}

func (h *handlerImpl) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *handlerImpl) Dimensions() (width, height int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Width, h.state.Height
}
