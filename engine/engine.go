package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/frame"
	"github.com/Carmen-Shannon/oxy-marquee/engine/input"
	"github.com/Carmen-Shannon/oxy-marquee/engine/profiler"
	"github.com/Carmen-Shannon/oxy-marquee/engine/renderer"
	"github.com/Carmen-Shannon/oxy-marquee/engine/viewport"
	"github.com/Carmen-Shannon/oxy-marquee/engine/window"
)

// engine implements the Engine interface.
// Every frame runs on the window thread from the message loop's update callback.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	updater  *frame.Updater
	viewport viewport.Handler
	pointer  input.PointerTracker

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameLimit    time.Duration // minimum frame duration; 0 = uncapped
	frameCallback func(stats frame.Stats)
	keyBindings   map[uint32]func()

	lastRenderErr string
	lastPanic     string
	quitOnce      sync.Once
	quit          bool
}

// Engine is the main entry point for the engine.
// It drives the frame updater and the renderer from the window message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when headless
	Window() window.Window

	// Updater returns the frame updater driven by the engine.
	//
	// Returns:
	//   - *frame.Updater: the updater
	Updater() *frame.Updater

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ToggleProfiler flips profiling output.
	//
	// Returns:
	//   - bool: true if profiling is now enabled
	ToggleProfiler() bool

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// SetFrameCallback registers a function called after each frame is updated and rendered.
	//
	// Parameters:
	//   - callback: function receiving the frame statistics
	SetFrameCallback(callback func(stats frame.Stats))

	// BindKey registers fn to run when key is pressed. A nil fn removes the binding.
	//
	// Parameters:
	//   - key: the key code (see common.Key*)
	//   - fn: the action to run on the frame thread
	BindKey(key uint32, fn func())

	// Step runs a single frame: update, render, profiling, frame cap.
	// A panic inside the frame is recovered and logged; it never stops the loop.
	Step()

	// Run starts the main loop (blocks until the window closes), then releases
	// the renderer and closes the window.
	Run()

	// Quit asks the main loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A missing updater is replaced by frame.NewUpdater with defaults. When both a
// window and a viewport handler are given, the handler is subscribed to
// framebuffer resizes and applied once to the initial framebuffer size.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:    profiler.NewProfiler(profiler.DefaultInterval),
		keyBindings: make(map[uint32]func()),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.updater == nil {
		e.updater = frame.NewUpdater()
	}

	if e.window != nil {
		e.window.SetUpdateCallback(e.Step)
		e.window.SetKeyDownCallback(e.handleKey)
		if e.pointer != nil {
			e.window.SetMouseMoveCallback(e.pointer.Move)
		}
		if e.viewport != nil {
			e.window.SetResizeCallback(func(width, height int) {
				e.viewport.Resize(width, height)
			})
			e.viewport.Resize(e.window.FramebufferSize())
		}
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Updater() *frame.Updater {
	return e.updater
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] no window configured, nothing to run")
		return
	}
	e.window.ProcessMessages()

	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] failed to close window: %v", err)
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.quit = true
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

func (e *engine) Step() {
	if e.quit {
		return
	}
	// Recover from panics inside the frame; the next frame runs as usual.
	defer func() {
		if r := recover(); r != nil {
			e.reportPanic(r)
		}
	}()

	start := time.Now()
	stats := e.updater.Update()

	if e.renderer != nil {
		err := e.renderer.Render(e.updater.Scene())
		e.reportRenderError(err)
	}

	if e.frameCallback != nil {
		e.frameCallback(stats)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(stats)
	}

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// reportPanic logs a recovered frame panic once until a different one occurs.
func (e *engine) reportPanic(r any) {
	if msg := fmt.Sprint(r); msg != e.lastPanic {
		log.Printf("frame recovered from panic: %v", r)
		e.lastPanic = msg
	}
}

// reportRenderError logs a render error once until it changes or clears.
func (e *engine) reportRenderError(err error) {
	if err == nil {
		e.lastRenderErr = ""
		return
	}
	if msg := err.Error(); msg != e.lastRenderErr {
		log.Printf("[Engine] render failed: %v", err)
		e.lastRenderErr = msg
	}
}

func (e *engine) handleKey(keyCode uint32) {
	if fn, ok := e.keyBindings[keyCode]; ok {
		fn()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) ToggleProfiler() bool {
	e.profilingEnabled = !e.profilingEnabled
	log.Printf("[Engine] profiler enabled: %v", e.profilingEnabled)
	return e.profilingEnabled
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) SetFrameCallback(callback func(stats frame.Stats)) {
	e.frameCallback = callback
}

func (e *engine) BindKey(key uint32, fn func()) {
	if fn == nil {
		delete(e.keyBindings, key)
		return
	}
	e.keyBindings[key] = fn
}

// frameDuration converts a frame rate cap into a minimum frame duration.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
