package viewport

// HandlerBuilderOption is a functional option for configuring a Handler.
type HandlerBuilderOption func(*handlerImpl)

// WithCamera sets the receiver of aspect-ratio updates.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - HandlerBuilderOption: option function to apply
func WithCamera(c AspectReceiver) HandlerBuilderOption {
	return func(h *handlerImpl) {
		h.camera = c
	}
}

// WithSurface sets the render surface notified of new pixel dimensions.
//
// Parameters:
//   - s: the surface
//
// Returns:
//   - HandlerBuilderOption: option function to apply
func WithSurface(s SurfaceResizer) HandlerBuilderOption {
	return func(h *handlerImpl) {
		h.surface = s
	}
}

// WithLayoutObserver sets the callback receiving layout classification changes.
// It is also called once on the first applied resize.
//
// Parameters:
//   - fn: the observer
//
// Returns:
//   - HandlerBuilderOption: option function to apply
func WithLayoutObserver(fn LayoutObserver) HandlerBuilderOption {
	return func(h *handlerImpl) {
		h.observer = fn
	}
}

// WithThresholds overrides the layout thresholds. Values that would let both
// flags be set at once (portraitBelow > ultraWideAbove) are ignored.
//
// Parameters:
//   - ultraWideAbove: aspect ratio above which the layout is ultra-wide
//   - portraitBelow: aspect ratio below which the layout is portrait
//
// Returns:
//   - HandlerBuilderOption: option function to apply
func WithThresholds(ultraWideAbove, portraitBelow float64) HandlerBuilderOption {
	return func(h *handlerImpl) {
		if portraitBelow > ultraWideAbove || portraitBelow <= 0 {
			return
		}
		h.ultraWideAbove = ultraWideAbove
		h.portraitBelow = portraitBelow
	}
}
