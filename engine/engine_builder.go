package engine

import (
	"github.com/Carmen-Shannon/oxy-marquee/engine/frame"
	"github.com/Carmen-Shannon/oxy-marquee/engine/input"
	"github.com/Carmen-Shannon/oxy-marquee/engine/renderer"
	"github.com/Carmen-Shannon/oxy-marquee/engine/viewport"
	"github.com/Carmen-Shannon/oxy-marquee/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose message loop drives the engine.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that presents the scene each frame.
//
// Parameters:
//   - r: the renderer bound to the window surface
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithUpdater sets the frame updater advanced each frame.
//
// Parameters:
//   - u: the updater owning the scene systems
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdater(u *frame.Updater) EngineBuilderOption {
	return func(e *engine) {
		e.updater = u
	}
}

// WithViewport sets the handler receiving framebuffer resizes.
//
// Parameters:
//   - h: the viewport handler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithViewport(h viewport.Handler) EngineBuilderOption {
	return func(e *engine) {
		e.viewport = h
	}
}

// WithPointer sets the tracker receiving pointer movement from the window.
//
// Parameters:
//   - p: the pointer tracker read by the updater
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPointer(p input.PointerTracker) EngineBuilderOption {
	return func(e *engine) {
		e.pointer = p
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}

// WithKeyBinding registers an action for a key press during construction.
//
// Parameters:
//   - key: the key code
//   - fn: the action to run on the frame thread
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithKeyBinding(key uint32, fn func()) EngineBuilderOption {
	return func(e *engine) {
		if fn != nil {
			e.keyBindings[key] = fn
		}
	}
}
