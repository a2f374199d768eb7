package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers is an option builder that sets the maximum number of workers used by LoadAsync.
// Values below one are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithTypeface is an option builder that pre-populates the cache with a typeface.
//
// Parameters:
//   - key: the cache key, matching a Source name
//   - tf: the typeface to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the typeface option to a loader
func WithTypeface(key string, tf *Typeface) LoaderBuilderOption {
	return func(l *loader) {
		l.cache[key] = tf
	}
}
