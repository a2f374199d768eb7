package renderer

import (
	"errors"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-marquee/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeBackend struct {
	configured bool
	width      int
	height     int
	clear      wgpu.Color
	mode       PresentMode
	frames     int
	presented  int
	endErr     error
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) ConfigureSurface(width, height int) error {
	f.width, f.height = width, height
	f.configured = width > 0 && height > 0
	return nil
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.mode = mode }

func (f *fakeBackend) SetClearColor(c wgpu.Color) { f.clear = c }

func (f *fakeBackend) BeginFrame() error {
	if !f.configured {
		return errSurfaceNotConfigured
	}
	f.frames++
	return nil
}

func (f *fakeBackend) EndFrame() error { return f.endErr }

func (f *fakeBackend) Present() { f.presented++ }

func (f *fakeBackend) Release() {}

func newTestRenderer(b *fakeBackend) *renderer {
	return &renderer{mu: &sync.Mutex{}, backend: b}
}

func TestRenderClearsToSceneBackground(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)
	r.Resize(800, 600)

	s := scene.NewScene(scene.WithBackground([4]float64{0, 0, 0, 0.1}))
	if err := r.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := (wgpu.Color{A: 0.1}); b.clear != want {
		t.Fatalf("clear color\nhave %+v\nwant %+v", b.clear, want)
	}
	if b.frames != 1 || b.presented != 1 {
		t.Fatalf("frames %d presented %d, want 1 and 1", b.frames, b.presented)
	}
	if w, h := r.Size(); w != 800 || h != 600 {
		t.Fatalf("size: got %dx%d", w, h)
	}
}

func TestRenderSkipsUnconfiguredSurface(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)
	r.Resize(0, 600)
	if err := r.Render(nil); err != nil {
		t.Fatalf("Render on minimized surface: %v", err)
	}
	if b.presented != 0 {
		t.Fatalf("presented %d frames, want 0", b.presented)
	}
}

func TestRenderReportsSubmitFailure(t *testing.T) {
	b := &fakeBackend{endErr: errors.New("lost device")}
	r := newTestRenderer(b)
	r.Resize(10, 10)
	if err := r.Render(nil); err == nil {
		t.Fatal("expected error")
	}
	if b.presented != 0 {
		t.Fatal("failed frame was presented")
	}
}

func TestPresentModeMapping(t *testing.T) {
	if got := toWGPUPresentMode(PresentModeVSync); got != wgpu.PresentModeFifo {
		t.Errorf("vsync: got %v", got)
	}
	if got := toWGPUPresentMode(PresentModeUncapped); got != wgpu.PresentModeImmediate {
		t.Errorf("uncapped: got %v", got)
	}

	b := &fakeBackend{}
	r := newTestRenderer(b)
	r.SetPresentMode(PresentModeUncapped)
	if b.mode != PresentModeUncapped {
		t.Errorf("backend mode: got %v", b.mode)
	}
}
