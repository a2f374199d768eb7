package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/oxy-marquee/common"
	"github.com/Carmen-Shannon/oxy-marquee/engine"
	"github.com/Carmen-Shannon/oxy-marquee/engine/config"
	"github.com/Carmen-Shannon/oxy-marquee/engine/frame"
	"github.com/Carmen-Shannon/oxy-marquee/engine/highlight"
	"github.com/Carmen-Shannon/oxy-marquee/engine/input"
	"github.com/Carmen-Shannon/oxy-marquee/engine/loader"
	"github.com/Carmen-Shannon/oxy-marquee/engine/orbit"
	"github.com/Carmen-Shannon/oxy-marquee/engine/renderer"
	"github.com/Carmen-Shannon/oxy-marquee/engine/stage"
	"github.com/Carmen-Shannon/oxy-marquee/engine/viewport"
	"github.com/Carmen-Shannon/oxy-marquee/engine/window"
)

func main() {
	variantName := flag.String("variant", config.DefaultVariant, "scene variant to run (classic, reveal)")
	overridePath := flag.String("config", "", "optional YAML file overriding variant values")
	profile := flag.Bool("profile", false, "log frame statistics once per second")
	fps := flag.Float64("fps", 0, "frame rate cap, 0 for uncapped")
	flag.Parse()

	v, err := config.Load(*variantName, *overridePath)
	if err != nil {
		log.Fatalf("failed to load variant: %v (available: %v)", err, config.Names())
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(v.Window.Title),
		window.WithWidth(v.Window.Width),
		window.WithHeight(v.Window.Height),
	)
	if err != nil {
		log.Fatalf("failed to open window: %v", err)
	}

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win)
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}

	// ── Scene ───────────────────────────────────────────────────────────
	fbW, fbH := win.FramebufferSize()
	var aspect float32
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	st := stage.Build(v, aspect)

	vp := viewport.NewHandler(
		viewport.WithCamera(st.Camera()),
		viewport.WithSurface(r),
		viewport.WithThresholds(v.Layout.UltraWideAbove, v.Layout.PortraitBelow),
		viewport.WithLayoutObserver(func(l viewport.Layout) {
			log.Printf("[Viewport] layout changed: ultra-wide=%v portrait=%v", l.UltraWide, l.Portrait)
		}),
	)
	pointer := input.NewPointerTracker(vp)

	u := frame.NewUpdater(
		frame.WithScene(st.Scene()),
		frame.WithPointer(pointer),
		frame.WithOrbit(orbit.NewState(v.Orbit.Speed)),
		frame.WithHighlight(highlight.NewController(st.Tuning())),
		frame.WithMotion(st.Motion()),
	)

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithUpdater(u),
		engine.WithViewport(vp),
		engine.WithPointer(pointer),
		engine.WithProfiling(*profile),
		engine.WithFrameLimit(*fps),
	)
	eng.BindKey(common.KeyP, func() { eng.ToggleProfiler() })
	eng.BindKey(common.KeyR, func() {
		if !st.Replay(u.Clock().Elapsed(), u.Entrances()) {
			log.Printf("[Stage] nothing to replay yet")
		}
	})
	eng.BindKey(common.KeyF1, func() {
		s := vp.State()
		log.Printf("[Viewport] %dx%d aspect %.3f ultra-wide=%v portrait=%v",
			s.Width, s.Height, s.Aspect, s.Layout.UltraWide, s.Layout.Portrait)
	})

	// ── Typeface ────────────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ld := loader.NewLoader(loader.BackendTypeTypefaceJSON, loader.WithWorkers(1))
	ld.LoadAsync(ctx, typefaceSource(v.Assets), func(res loader.Result) {
		if res.Err != nil {
			log.Printf("[Loader] typeface unavailable, running without text: %v", res.Err)
			return
		}
		u.Post(func() {
			if st.PopulateText(res.Typeface, u.Clock().Elapsed(), u.Entrances()) {
				log.Printf("[Stage] text ready from %s", res.Source)
			}
		})
	})

	stopBursts := st.StartBursts(u, stage.LogBurst)
	defer stopBursts()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		u.Post(eng.Quit)
	}()

	eng.Run()
}

// typefaceSource returns the local typeface file when configured, otherwise the
// primary URL with the fallback URL behind it.
func typefaceSource(a config.Assets) loader.Source {
	if a.FontFile != "" {
		return loader.FileSource{Path: a.FontFile}
	}
	primary := loader.NewHTTPSource(a.FontPrimary)
	if a.FontFallback == "" {
		return primary
	}
	return loader.WithFallback(primary, loader.NewHTTPSource(a.FontFallback))
}
