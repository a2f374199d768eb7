package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-marquee/engine/frame"
)

// DefaultInterval is the logging interval used by NewProfiler when none is given.
const DefaultInterval = time.Second

// Profiler tracks frame rate, memory, and scene statistics for performance monitoring.
// Outputs one line to the log per interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	continuations int
	fps           float64
}

// NewProfiler creates a new Profiler that logs every interval.
// A non-positive interval falls back to DefaultInterval.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: interval,
	}
}

// Tick should be called once per frame with that frame's statistics.
// Logs FPS, heap usage, allocation rate, GC pauses, the current hover state,
// active entrances and the continuations drained since the last line.
//
// Parameters:
//   - s: the statistics of the frame just updated
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(s frame.Stats) bool {
	p.frameCount++
	p.continuations += s.Continuations
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = p.updateInterval.Seconds()
	}
	p.fps = float64(p.frameCount) / seconds

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
			maxPauseUs = pause
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Frame: %d | Hover: %s (%s) | Entrances: %d | Continuations: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs) | Sys: %.2f MB",
		p.fps, s.Frame, s.Hover, s.Mode, s.ActiveEntrances, p.continuations, allocMB, allocRateMB, gcCount, maxPauseUs, sysMB)

	p.frameCount = 0
	p.continuations = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// FPS returns the frame rate computed at the last logged tick.
func (p *Profiler) FPS() float64 {
	return p.fps
}
