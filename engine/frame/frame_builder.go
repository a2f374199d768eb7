package frame

import (
	"github.com/Carmen-Shannon/oxy-marquee/engine/clock"
	"github.com/Carmen-Shannon/oxy-marquee/engine/entrance"
	"github.com/Carmen-Shannon/oxy-marquee/engine/highlight"
	"github.com/Carmen-Shannon/oxy-marquee/engine/input"
	"github.com/Carmen-Shannon/oxy-marquee/engine/orbit"
	"github.com/Carmen-Shannon/oxy-marquee/engine/picking"
	"github.com/Carmen-Shannon/oxy-marquee/engine/scene"
)

// UpdaterBuilderOption is a functional option for configuring an Updater via NewUpdater.
type UpdaterBuilderOption func(*Updater)

// WithClock sets the time source read once per frame.
func WithClock(c clock.Clock) UpdaterBuilderOption {
	return func(u *Updater) {
		u.clock = c
	}
}

// WithPointer sets the pointer tracker read once per frame.
func WithPointer(p input.PointerTracker) UpdaterBuilderOption {
	return func(u *Updater) {
		u.pointer = p
	}
}

// WithOrbit sets the shared orbit state.
func WithOrbit(o *orbit.State) UpdaterBuilderOption {
	return func(u *Updater) {
		u.orbit = o
	}
}

// WithHighlight sets the highlight controller.
func WithHighlight(h *highlight.Controller) UpdaterBuilderOption {
	return func(u *Updater) {
		u.highlight = h
	}
}

// WithEntrances sets the entrance sequencer.
func WithEntrances(s entrance.Sequencer) UpdaterBuilderOption {
	return func(u *Updater) {
		u.entrances = s
	}
}

// WithScene sets the scene whose objects are animated.
func WithScene(s scene.Scene) UpdaterBuilderOption {
	return func(u *Updater) {
		u.scene = s
	}
}

// WithPicker sets the picker used to resolve the hovered object.
func WithPicker(p picking.Picker) UpdaterBuilderOption {
	return func(u *Updater) {
		u.picker = p
	}
}

// WithMotion sets the per-variant animation constants.
func WithMotion(m Motion) UpdaterBuilderOption {
	return func(u *Updater) {
		u.motion = m
	}
}

// WithMailboxSize sets how many continuations may be queued between frames.
//
// Parameters:
//   - n: mailbox capacity, values below one are ignored
//
// Returns:
//   - UpdaterBuilderOption: a function that sets the mailbox capacity
func WithMailboxSize(n int) UpdaterBuilderOption {
	return func(u *Updater) {
		if n > 0 {
			u.mailbox = make(chan func(), n)
		}
	}
}
