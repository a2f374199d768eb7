package loader

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the asset format backend to use.
type LoaderBackendType int

const (
	// BackendTypeTypefaceJSON selects the three.js typeface JSON backend.
	BackendTypeTypefaceJSON LoaderBackendType = iota
)

// Result is the outcome of loading one asset.
type Result struct {
	// Typeface is nil when Err is set.
	Typeface *Typeface
	// Source names the source that produced Typeface, or the last one tried.
	Source string
	Err    error
}

// Loader fetches, parses, and caches typefaces.
type Loader interface {
	// Load fetches and parses the asset from src, returning the cached typeface
	// when src has been loaded before.
	//
	// Parameters:
	//   - ctx: cancels the fetch
	//   - src: the source, possibly a WithFallback combination
	//
	// Returns:
	//   - Result: the typeface and the name of the source that served it, or the error
	Load(ctx context.Context, src Source) Result

	// LoadAsync runs Load as a single task on the loader's worker pool and hands
	// the result to deliver from the worker goroutine. Callers that mutate scene
	// state post the result to the frame thread from inside deliver.
	//
	// Parameters:
	//   - ctx: cancels the fetch
	//   - src: the source
	//   - deliver: receives the result exactly once
	LoadAsync(ctx context.Context, src Source, deliver func(Result))

	// Get retrieves a cached typeface by source name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *Typeface: the cached typeface or nil
	Get(name string) *Typeface
}

type loader struct {
	mu *sync.RWMutex

	cache   map[string]*Typeface
	backend loaderBackend
	workers int
	pool    worker.DynamicWorkerPool
	tasks   int
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the specified backend type and options applied.
// LoadAsync runs on a dynamic worker pool whose idle workers exit after a second.
//
// Parameters:
//   - backendType: the type of loader backend to use
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:      &sync.RWMutex{},
		cache:   make(map[string]*Typeface),
		workers: 1,
	}

	switch backendType {
	case BackendTypeTypefaceJSON:
		l.backend = newTypefaceJSONBackend()
	}

	for _, option := range options {
		option(l)
	}

	// Created after options so WithWorkers can override the default.
	l.pool = worker.NewDynamicWorkerPool(l.workers, 16, 1*time.Second)
	return l
}

// Attempt fetches and parses the typeface from src without caching.
// A WithFallback source tries its primary once and its fallback once, where a
// fetch or a parse failure of the primary both count as a failed attempt.
//
// Parameters:
//   - ctx: cancels the fetch
//   - src: the source
//
// Returns:
//   - Result: the outcome
func Attempt(ctx context.Context, src Source) Result {
	return attempt(ctx, newTypefaceJSONBackend(), src)
}

func attempt(ctx context.Context, backend loaderBackend, src Source) Result {
	if fb, ok := src.(*fallbackSource); ok {
		first := attempt(ctx, backend, fb.primary)
		if first.Err == nil {
			return first
		}
		log.Printf("[Loader] primary source %s failed, trying fallback: %v", fb.primary.Name(), first.Err)

		second := attempt(ctx, backend, fb.fallback)
		if second.Err == nil {
			return second
		}
		return Result{
			Source: second.Source,
			Err:    joinFailures(fb.primary, first.Err, fb.fallback, second.Err),
		}
	}

	data, err := src.Fetch(ctx)
	if err != nil {
		return Result{Source: src.Name(), Err: err}
	}
	tf, err := backend.Parse(data)
	if err != nil {
		return Result{Source: src.Name(), Err: fmt.Errorf("failed to parse %s: %w", src.Name(), err)}
	}
	return Result{Typeface: tf, Source: src.Name()}
}

func (l *loader) Load(ctx context.Context, src Source) Result {
	l.mu.RLock()
	if cached, ok := l.cache[src.Name()]; ok {
		l.mu.RUnlock()
		return Result{Typeface: cached, Source: src.Name()}
	}
	l.mu.RUnlock()

	res := attempt(ctx, l.backend, src)
	if res.Err != nil {
		return res
	}

	l.mu.Lock()
	l.cache[src.Name()] = res.Typeface
	if res.Source != src.Name() {
		l.cache[res.Source] = res.Typeface
	}
	l.mu.Unlock()

	return res
}

func (l *loader) LoadAsync(ctx context.Context, src Source, deliver func(Result)) {
	l.mu.Lock()
	id := l.tasks
	l.tasks++
	l.mu.Unlock()

	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			res := l.Load(ctx, src)
			deliver(res)
			return nil, res.Err
		},
	})
}

func (l *loader) Get(name string) *Typeface {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache[name]
}
