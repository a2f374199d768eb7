package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultHTTPTimeout bounds a single HTTP fetch.
const DefaultHTTPTimeout = 15 * time.Second

// Source is one place an asset can be fetched from.
type Source interface {
	// Name identifies the source in logs and results.
	//
	// Returns:
	//   - string: the source name, usually a URL or path
	Name() string

	// Fetch retrieves the raw asset bytes.
	//
	// Parameters:
	//   - ctx: cancels the fetch
	//
	// Returns:
	//   - []byte: the asset payload
	//   - error: error if the asset could not be retrieved
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource fetches an asset with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

var _ Source = &HTTPSource{}

// NewHTTPSource creates an HTTPSource using a client with DefaultHTTPTimeout.
//
// Parameters:
//   - url: the asset URL
//
// Returns:
//   - *HTTPSource: the source
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

func (s *HTTPSource) Name() string {
	return s.URL
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s failed with status: %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", s.URL, err)
	}
	return data, nil
}

// FileSource reads an asset from the local filesystem.
type FileSource struct {
	Path string
}

var _ Source = FileSource{}

func (s FileSource) Name() string {
	return s.Path
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return data, nil
}

// fallbackSource tries primary once and then fallback once.
type fallbackSource struct {
	primary  Source
	fallback Source
}

var _ Source = &fallbackSource{}

// WithFallback combines two sources so that fallback is tried exactly once
// after primary fails. When used with Attempt, a primary payload that fails to
// parse also triggers the fallback.
//
// Parameters:
//   - primary: the source tried first
//   - fallback: the source tried after primary fails
//
// Returns:
//   - Source: the combined source
func WithFallback(primary, fallback Source) Source {
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (s *fallbackSource) Name() string {
	return s.primary.Name() + " | " + s.fallback.Name()
}

func (s *fallbackSource) Fetch(ctx context.Context) ([]byte, error) {
	data, primaryErr := s.primary.Fetch(ctx)
	if primaryErr == nil {
		return data, nil
	}
	data, fallbackErr := s.fallback.Fetch(ctx)
	if fallbackErr == nil {
		return data, nil
	}
	return nil, joinFailures(s.primary, primaryErr, s.fallback, fallbackErr)
}

func joinFailures(primary Source, primaryErr error, fallback Source, fallbackErr error) error {
	return fmt.Errorf("all sources failed: %w", errors.Join(
		fmt.Errorf("primary %s: %w", primary.Name(), primaryErr),
		fmt.Errorf("fallback %s: %w", fallback.Name(), fallbackErr),
	))
}
