package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-marquee/engine/scene"
	"github.com/Carmen-Shannon/oxy-marquee/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width  int
	height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
}

// Renderer binds the window's drawable surface and presents one frame per call.
// Geometry is drawn by the scene-graph renderer that consumes the same surface;
// this layer owns the swapchain, its size, and the clear color.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	// A zero dimension suspends rendering until a non-zero size arrives.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Render clears the surface to the scene's background and presents it.
	// Rendering is skipped without error while the surface has no size.
	//
	// Parameters:
	//   - s: the scene to render
	//
	// Returns:
	//   - error: error if the frame could not be acquired or submitted
	Render(s scene.Scene) error

	// SetClearColor overrides the clear color until the next Render.
	//
	// Parameters:
	//   - rgba: color as (r, g, b, a) in [0, 1]
	SetClearColor(rgba [4]float64)

	// SetPresentMode sets the surface present mode. It takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Size returns the last configured surface size.
	//
	// Returns:
	//   - width, height: the surface size in pixels
	Size() (width, height int)

	// Release frees the GPU resources held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer bound to the window's surface and configures
// it for the window's current framebuffer size.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window providing the platform surface descriptor
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: error if no adapter or device is available
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		presentMode: PresentModeVSync,
		msaa:        MSAAOff,
	}

	// Options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer backend: %w", err)
	}
	r.backend.SetPresentMode(r.presentMode)

	w, h := win.FramebufferSize()
	r.Resize(w, h)
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()

	if err := r.backend.ConfigureSurface(width, height); err != nil {
		log.Printf("[Renderer] failed to configure surface at %dx%d: %v", width, height, err)
	}
}

func (r *renderer) Render(s scene.Scene) error {
	if s != nil {
		r.backend.SetClearColor(toWGPUColor(s.Background()))
	}

	if err := r.backend.BeginFrame(); err != nil {
		if errors.Is(err, errSurfaceNotConfigured) {
			return nil
		}
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) SetClearColor(rgba [4]float64) {
	r.backend.SetClearColor(toWGPUColor(rgba))
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	r.presentMode = mode
	r.mu.Unlock()
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) Release() {
	r.backend.Release()
}
