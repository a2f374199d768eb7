package picking

// PickerBuilderOption is a functional option for configuring a Picker.
type PickerBuilderOption func(*pickerImpl)

// WithRaycaster replaces the default oriented-box raycaster, for example with
// one backed by the rendering library's mesh intersection.
//
// Parameters:
//   - r: the raycaster
//
// Returns:
//   - PickerBuilderOption: option function to apply
func WithRaycaster(r Raycaster) PickerBuilderOption {
	return func(p *pickerImpl) {
		if r != nil {
			p.raycaster = r
		}
	}
}

// WithBroadPhase enables or disables the frustum bounding-sphere test that
// runs before the raycaster.
//
// Parameters:
//   - enabled: true to cull candidates outside the view
//
// Returns:
//   - PickerBuilderOption: option function to apply
func WithBroadPhase(enabled bool) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.broadPhase = enabled
	}
}
